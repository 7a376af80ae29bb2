// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/base-converter/internal/convert"
	"github.com/pdiddy/base-converter/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert VALUE",
	Short: "Convert one value into every supported base",
	Long: `Convert parses VALUE in the base given by --from and prints it in binary,
octal, decimal and hexadecimal.

VALUE may carry a sign and the prefix of its own base (0b, 0o, 0x). Put
negative values after -- so they are not read as flags:

  baseconv convert --from hex -- -0xff`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	fromFlag, _ := cmd.Flags().GetString("from")
	from, err := types.ParseBase(fromFlag)
	if err != nil {
		return err
	}
	format, err := types.ParseOutputFormat(string(cfg.Output.Format))
	if err != nil {
		return err
	}

	values := convert.ConvertFrom(args[0], from)
	if values.IsEmpty() {
		return fmt.Errorf("no valid value: %q is not a valid %s number", args[0], from.Name())
	}

	return writeConversion(cmd.OutOrStdout(), conversion{Input: args[0], Base: from, Values: values.Entries()}, format, cfg.Output.Prefix)
}

func init() {
	convertCmd.Flags().String("from", "10", "base of VALUE: 2, 8, 10, 16 or bin, oct, dec, hex")
	convertCmd.Flags().String("format", "", "output format: table, json or yaml (default from config, else table)")
	convertCmd.Flags().Bool("prefix", false, "print literals with their base prefix in the table")

	viper.BindPFlag("output.format", convertCmd.Flags().Lookup("format"))
	viper.BindPFlag("output.prefix", convertCmd.Flags().Lookup("prefix"))

	rootCmd.AddCommand(convertCmd)
}
