/*
   Copyright 2025 The DIRPX Authors

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

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"dirpx.dev/canonerr"
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [json]",
	Short: "Normalize a JSON value (argument or stdin) into a canonical response",
	Example: `  canonerr-demo normalize '{"code":"PAYMENT_DECLINED","error":{"message":"card declined"}}'
  echo '"plain text"' | canonerr-demo normalize`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	normalizeCmd.Flags().Bool("with-stack", false, "keep errorStack in the output")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	var src io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		src = strings.NewReader(args[0])
	}

	var v any
	if err := json.NewDecoder(src).Decode(&v); err != nil {
		return fmt.Errorf("failed to decode input: %w", err)
	}

	resp := canonerr.Normalize(v)
	if keep, _ := cmd.Flags().GetBool("with-stack"); !keep {
		resp = resp.WithoutStack()
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
