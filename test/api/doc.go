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

// Package api provides integration test utilities for the vaccine reservation API.
//
// # Remote and Offline Modes
//
// When API_BASE_URL is set the suites run against that deployment, and only
// the specs for API_REVISION are run since a deployment serves one revision.
// When it is unset every revision is exercised against an in-process
// reference server, see StartReferenceServer.
//
// # Expected Literals
//
// The service reports most outcomes as HTTP 200 with a feedback string, so
// the suites assert on those strings. They were captured by hand with the
// wcg-reservation-probe binary and should be re-captured the same way when
// the service changes.
package api
