// Copyright © 2021 - 2023 SUSE LLC
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//     http://www.apache.org/licenses/LICENSE-2.0
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package mask hides secrets in values meant for logs and debug output.
package mask

// Placeholder replaces any non-empty secret.
const Placeholder = "*****"

// MaskValue returns Placeholder for a non-empty value, and the empty string otherwise,
// so that an unset secret stays distinguishable from a set one.
func MaskValue(value string) string {
	if value == "" {
		return ""
	}
	return Placeholder
}
