package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/manlius/netdiffuseR/rgraph/scenario"
)

// validateCmd checks scenario files without generating anything.
var validateCmd = &cobra.Command{
	Use:   "validate scenario.yaml [scenario.yaml ...]",
	Short: "Check scenario files without generating",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, path := range args {
			spec, err := scenario.Load(path)
			if err != nil {
				logrus.Fatalf("%s: %v", path, err)
			}
			if err := spec.Validate(); err != nil {
				logrus.Fatalf("%s: %v", path, err)
			}
			fmt.Printf("%s: ok (%s, n=%d)\n", path, spec.Model, spec.N)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
