package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sandbox/internal/element"
)

var reactionsCmd = &cobra.Command{
	Use:   "reactions [a b]",
	Short: "List reaction rules or check a pair",
	Long: `Without arguments, lists every reaction rule of the active config.
With two elements, reports what they produce when they touch. The lookup
is symmetric: "water fire" and "fire water" give the same answer.

Examples:
  sandbox reactions
  sandbox reactions water fire
  sandbox reactions oil 5
  sandbox reactions --config ./my-sandbox.yaml`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("expected no arguments or two elements, got %d", len(args))
		}
		return nil
	},
	Run: runReactions,
}

func runReactions(_ *cobra.Command, args []string) {
	_, rules := loadSandbox("")

	if len(args) == 2 {
		a, err := element.ParseKind(args[0])
		if err != nil {
			fail("%v", err)
		}
		b, err := element.ParseKind(args[1])
		if err != nil {
			fail("%v", err)
		}

		rule, ok := rules.Find(a, b)
		if !ok {
			fmt.Printf("%s and %s do not react.\n", a, b)
			return
		}
		fmt.Printf("%s + %s -> %s\n", a, b, rule.Product)
		fmt.Printf("energy x%.2f (%s)\n", rule.EnergyScalar, rule.Balance())
		return
	}

	list := rules.Rules()
	if len(list) == 0 {
		fmt.Println("No reaction rules configured.")
		return
	}

	fmt.Println("Reaction rules:")
	fmt.Println()
	fmt.Printf("  %-8s  %-8s  %-8s  %-7s  %s\n", "A", "B", "Product", "Energy", "Balance")
	fmt.Printf("  %-8s  %-8s  %-8s  %-7s  %s\n", "-", "-", "-------", "------", "-------")
	for _, r := range list {
		fmt.Printf("  %-8s  %-8s  %-8s  x%-6.2f  %s\n", r.Reactants[0], r.Reactants[1], r.Product, r.EnergyScalar, r.Balance())
	}
	fmt.Println()
	fmt.Println("Every rule applies in both orders.")
}
