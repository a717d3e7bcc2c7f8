package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/phase"
	"github.com/abhisek/pathwise/internal/store"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "Manage your learning modules",
}

var modulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your modules, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		ms, err := e.reg.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(ms) == 0 {
			fmt.Println("No modules yet. Create one with: pathwise modules create <topic>")
			return nil
		}

		fmt.Printf("%-36s  %-30s  %-16s  %-6s  %s\n", "ID", "Name", "Status", "Final", "Created")
		fmt.Println(strings.Repeat("─", 104))
		for _, m := range ms {
			name := m.Name
			if len(name) > 30 {
				name = name[:27] + "..."
			}
			fmt.Printf("%-36s  %-30s  %-16s  %5.0f%%  %s\n",
				m.ID, name, m.Status, m.FinalTestScore,
				m.CreatedAt.Local().Format("2006-01-02"))
		}
		fmt.Printf("\n%d modules\n", len(ms))
		return nil
	},
}

var modulesCreateCmd = &cobra.Command{
	Use:   "create <topic>",
	Short: "Create a new module for a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		m, err := e.reg.CreateModule(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Printf("Created module %s (%s)\n", m.ID, m.Name)
		fmt.Printf("Start studying with: pathwise study %s\n", m.ID)
		return nil
	},
}

var modulesShowCmd = &cobra.Command{
	Use:   "show <module-id>",
	Short: "Show one module's progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		m, err := e.reg.Get(cmd.Context(), args[0])
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("module %s not found", args[0])
			}
			return err
		}

		fmt.Printf("ID:              %s\n", m.ID)
		fmt.Printf("Name:            %s\n", m.Name)
		fmt.Printf("Status:          %s\n", m.Status)
		fmt.Printf("Phase:           %s\n", phase.Derive(m))
		fmt.Printf("Resources:       %d\n", len(m.Resources))
		fmt.Printf("Teacher picks:   %d\n", len(m.TeacherPicks))
		if m.AssignmentContent != nil {
			fmt.Printf("Assignment:      %s (%d sections)\n",
				m.AssignmentContent.Title, len(m.AssignmentContent.Sections))
		} else {
			fmt.Printf("Assignment:      not generated\n")
		}
		fmt.Printf("Quiz attempts:   %d\n", len(m.Quizzes))
		for _, q := range m.Quizzes {
			fmt.Printf("  %.0f%% on %s\n", q.Score, q.Date.Local().Format("2006-01-02 15:04"))
		}
		fmt.Printf("Final test:      %.0f%%\n", m.FinalTestScore)
		fmt.Printf("Certificate:     %v\n", m.CertificateIssued)
		fmt.Printf("Created:         %s\n", m.CreatedAt.Local().Format("2006-01-02 15:04"))
		fmt.Printf("Last updated:    %s\n", m.LastUpdated.Local().Format("2006-01-02 15:04"))
		return nil
	},
}

var modulesAddResourceCmd = &cobra.Command{
	Use:   "add-resource <module-id> <resource>",
	Short: "Add a study resource to a module",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		m, err := e.reg.AddResource(cmd.Context(), args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Printf("Added. %s now has %d resources.\n", m.Name, len(m.Resources))
		return nil
	},
}

var modulesResetCmd = &cobra.Command{
	Use:   "reset <module-id>",
	Short: "Retake a finished module, keeping its resources and assignment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		machine, _, err := e.reg.Open(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := machine.Reset(cmd.Context()); err != nil {
			if errors.Is(err, phase.ErrWrongPhase) {
				return fmt.Errorf("module %s is not finished; only finished modules can be reset", args[0])
			}
			return err
		}
		fmt.Println("Module reset. Resources and assignment content were kept.")
		return nil
	},
}

func init() {
	modulesCmd.AddCommand(modulesListCmd)
	modulesCmd.AddCommand(modulesCreateCmd)
	modulesCmd.AddCommand(modulesShowCmd)
	modulesCmd.AddCommand(modulesAddResourceCmd)
	modulesCmd.AddCommand(modulesResetCmd)
}
