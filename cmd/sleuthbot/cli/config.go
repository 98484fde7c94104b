package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"sleuthbot/internal/credential"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage stored configuration",
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		key, value := args[0], args[1]

		s, err := getStore()
		if err != nil {
			fail(err)
		}
		defer s.Close()

		if isSecretKey(key) {
			if err := s.SetSecret(key, value); err != nil {
				fail(err)
			}
			fmt.Printf("configuration saved: %s = %s\n", key, credential.MaskSecret(value))
			return
		}

		if err := s.SetConfig(key, value); err != nil {
			fail(err)
		}
		fmt.Printf("configuration saved: %s\n", key)
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]

		s, err := getStore()
		if err != nil {
			fail(err)
		}
		defer s.Close()

		var val string
		if isSecretKey(key) {
			val, err = s.GetSecret(key)
			if err == nil && val != "" {
				val = credential.MaskSecret(val)
			}
		} else {
			val, err = s.GetConfig(key)
		}
		if err != nil {
			fail(err)
		}

		if val == "" {
			fmt.Println("(not set)")
		} else {
			fmt.Println(val)
		}
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored configuration keys",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := getStore()
		if err != nil {
			fail(err)
		}
		defer s.Close()

		all, err := s.ListConfig()
		if err != nil {
			fail(err)
		}

		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			v := all[k]
			if isSecretKey(k) || credential.IsEncrypted(v) {
				v = "(secret)"
			}
			fmt.Printf("%s = %s\n", k, v)
		}
	},
}

// isSecretKey marks keys whose values must never be stored or echoed
// in the clear.
func isSecretKey(key string) bool {
	key = strings.ToLower(key)
	return strings.Contains(key, "key") || strings.Contains(key, "token") || strings.Contains(key, "secret")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
}
