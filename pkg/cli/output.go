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

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var ErrOutputFormat = errors.New("output format must be yaml or json")

const (
	outputYAML = "yaml"
	outputJSON = "json"
)

func addOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, "output", "o", outputYAML, "Output format, one of yaml or json")
}

// printOutput writes v in the requested format.  YAML goes via JSON so that the
// wire field names are kept.
func printOutput(w io.Writer, format string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	switch format {
	case outputJSON:
		var pretty any

		if err := json.Unmarshal(data, &pretty); err != nil {
			return err
		}

		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(pretty)
	case outputYAML:
		var generic any

		if err := yaml.Unmarshal(data, &generic); err != nil {
			return err
		}

		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(generic); err != nil {
			return err
		}

		return encoder.Close()
	}

	return fmt.Errorf("%w: %q", ErrOutputFormat, format)
}
