/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package options holds flags shared by every binary.
package options

import (
	"flag"

	"github.com/spf13/pflag"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// CoreOptions are common to all binaries.
type CoreOptions struct {
	zapOptions zap.Options
}

// AddFlags registers the zap logging flags (--zap-log-level and friends).
func (o *CoreOptions) AddFlags(f *pflag.FlagSet) {
	flags := flag.NewFlagSet("", flag.ContinueOnError)

	o.zapOptions.BindFlags(flags)

	f.AddGoFlagSet(flags)
}

// SetupLogging installs the global logger, call after flags are parsed.
func (o *CoreOptions) SetupLogging() {
	log.SetLogger(zap.New(zap.UseFlagOptions(&o.zapOptions)))
}
