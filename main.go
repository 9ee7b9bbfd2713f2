// SPDX-License-Identifier: MPL-2.0

package main

import cmd "rhask-cli/cmd/rhask"

func main() {
	cmd.Execute()
}
