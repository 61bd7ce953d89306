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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/nscaledev/wcg-reservation/pkg/client"
	"github.com/nscaledev/wcg-reservation/pkg/options"
	"github.com/nscaledev/wcg-reservation/pkg/probe"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"
)

func main() {
	var coreOptions options.CoreOptions

	clientOptions := client.NewOptions()

	coreOptions.AddFlags(pflag.CommandLine)
	clientOptions.AddFlags(pflag.CommandLine)

	// Flags after the operation belong to the operation.
	pflag.CommandLine.SetInterspersed(false)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <%s> [operation flags]\n", os.Args[0], strings.Join(probe.Commands(), "|"))
		pflag.PrintDefaults()
	}

	pflag.Parse()

	coreOptions.SetupLogging()

	ctx := log.IntoContext(signals.SetupSignalHandler(), log.Log.WithName("probe"))

	c, err := client.New(clientOptions)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := probe.New(c, os.Stdout).Run(ctx, pflag.Args()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
