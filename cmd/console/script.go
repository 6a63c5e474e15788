package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/thand-io/console/internal/common"
	"github.com/thand-io/console/internal/query"
	"github.com/thand-io/console/internal/script"
)

// reconcileDocument is the file read by script reconcile, JSON or YAML.
type reconcileDocument struct {
	Input script.Input       `json:"input"`
	State script.EditorState `json:"state"`
}

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Work with conditional authentication scripts",
	// Script commands run offline
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
}

var scriptDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the default script for a step count",
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := stepsFlag(cmd)
		if err != nil {
			return err
		}
		printScript(fmt.Sprintf("Default script for %d steps", steps), script.DefaultScriptFor(steps))
		return nil
	},
}

var scriptReconcileCmd = &cobra.Command{
	Use:   "reconcile <file>",
	Short: "Run a reconciliation pass over an input and editor state",
	Long: `Read an input and editor state from a JSON or YAML file, or from stdin
when the file is "-", and print the script the editor would display.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}

		document, err := common.ReadDataToInterface[reconcileDocument](data)
		if err != nil {
			return err
		}

		result := script.Reconcile(document.Input, document.State)

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")

		if expression, _ := cmd.Flags().GetString("jq"); len(expression) > 0 {
			values, err := query.Evaluate(expression, result, nil)
			if err != nil {
				return err
			}
			for _, value := range values {
				if err := encoder.Encode(value); err != nil {
					return err
				}
			}
			return nil
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return encoder.Encode(result)
		}

		fmt.Println(ruleBadgeStyle.Render(result.Rule.String()))
		if result.ResetRequested() {
			fmt.Println(warningStyle.Render("The script was reset, dependents must be notified"))
		}
		if result.Script == nil {
			fmt.Println(mutedStyle.Render("No script is displayed"))
			return nil
		}
		printScript("Displayed script", *result.Script)
		return nil
	},
}

var scriptResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset a script to the default for a step count",
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := stepsFlag(cmd)
		if err != nil {
			return err
		}

		confirm, _ := cmd.Flags().GetBool("yes")
		if !confirm {
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title("Reset the script?").
						Description("Disabling conditional authentication replaces the script with the default one").
						Value(&confirm),
				),
			)
			if err := form.Run(); err != nil {
				return fmt.Errorf("reset prompt cancelled: %w", err)
			}
		}

		if !confirm {
			fmt.Println(mutedStyle.Render("Reset cancelled"))
			return nil
		}

		printScript(fmt.Sprintf("Script reset for %d steps", steps), script.DefaultScriptFor(steps))
		return nil
	},
}

var scriptFormatCmd = &cobra.Command{
	Use:   "format <file>",
	Short: "Indent a script the way the editor displays it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), script.Beautify(script.StripSlashes(string(data))))
		return nil
	},
}

func stepsFlag(cmd *cobra.Command) (int, error) {
	value, err := cmd.Flags().GetString("steps")
	if err != nil {
		return 0, err
	}
	steps, ok := common.ParseStepCount(value)
	if !ok {
		return 0, fmt.Errorf("invalid step count %q", value)
	}
	return steps, nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func printScript(title, body string) {
	fmt.Println(headerStyle.Render(title))
	fmt.Println(scriptStyle.Render(body))
}

func init() {
	scriptDefaultCmd.Flags().StringP("steps", "s", "1", "Number of configured authentication steps")
	scriptResetCmd.Flags().StringP("steps", "s", "1", "Number of configured authentication steps")
	scriptResetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	scriptReconcileCmd.Flags().Bool("json", false, "Print the full result as JSON")
	scriptReconcileCmd.Flags().String("jq", "", "Print the result of a jq expression applied to the JSON result")

	scriptCmd.AddCommand(scriptDefaultCmd)
	scriptCmd.AddCommand(scriptReconcileCmd)
	scriptCmd.AddCommand(scriptResetCmd)
	scriptCmd.AddCommand(scriptFormatCmd)

	rootCmd.AddCommand(scriptCmd)
}
