/*
configdrift - Configuration Drift Detection CLI Tool

The tool compares a baseline JSON configuration against a target and reports
every missing key, new key, and modified value, so infrastructure teams can
catch unreviewed configuration changes before they reach production.
*/
package main

import (
	"os"

	"github.com/k0ns0l/configdrift/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
