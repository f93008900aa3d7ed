package cmd

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/client"
	config "task-tracker.com/task-tracker/internal/configs"
	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	model "task-tracker.com/task-tracker/internal/models"
	"task-tracker.com/task-tracker/internal/store"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Talk to a running task API through the local task store",
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "Fetch and print all tasks, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newTaskStore()
		if err := s.Refresh(cmd.Context()); err != nil {
			return err
		}
		for _, task := range s.Tasks() {
			printTask(task)
		}
		return nil
	},
}

var (
	addDescription string
	addPriority    string
	addStatus      string
	addDueDate     string
)

var clientAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &dto.CreateTaskRequest{Title: args[0]}
		if cmd.Flags().Changed("description") {
			req.Description = &addDescription
		}
		if cmd.Flags().Changed("priority") {
			priority := constants.TaskPriority(addPriority)
			req.Priority = &priority
		}
		if cmd.Flags().Changed("status") {
			status := constants.TaskStatus(addStatus)
			req.Status = &status
		}
		if cmd.Flags().Changed("due") {
			req.DueDate = &addDueDate
		}

		s := newTaskStore()
		if err := s.Create(cmd.Context(), req); err != nil {
			return err
		}
		printTask(s.Tasks()[0])
		return nil
	},
}

var (
	updateTitle       string
	updateDescription string
	updatePriority    string
	updateStatus      string
	updateDueDate     string
	updateClearDue    bool
)

var clientUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Apply a partial update to a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		update := client.NewTaskUpdate()
		if cmd.Flags().Changed("title") {
			update.SetTitle(updateTitle)
		}
		if cmd.Flags().Changed("description") {
			update.SetDescription(&updateDescription)
		}
		if cmd.Flags().Changed("priority") {
			update.SetPriority(constants.TaskPriority(updatePriority))
		}
		if cmd.Flags().Changed("status") {
			update.SetStatus(constants.TaskStatus(updateStatus))
		}
		if cmd.Flags().Changed("due") {
			due, err := time.Parse(time.RFC3339, updateDueDate)
			if err != nil {
				return fmt.Errorf("--due must be an RFC 3339 date-time: %w", err)
			}
			update.SetDueDate(&due)
		}
		if updateClearDue {
			update.SetDueDate(nil)
		}

		s := newTaskStore()
		if err := s.Refresh(cmd.Context()); err != nil {
			return err
		}
		if err := s.Update(cmd.Context(), args[0], update); err != nil {
			return err
		}
		for _, task := range s.Tasks() {
			if task.ID == args[0] {
				printTask(task)
			}
		}
		return nil
	},
}

var clientDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newTaskStore()
		if err := s.Refresh(cmd.Context()); err != nil {
			return err
		}
		update := client.NewTaskUpdate().SetStatus(constants.StatusCompleted)
		return s.Update(cmd.Context(), args[0], update)
	},
}

var clientRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newTaskStore()
		if err := s.Refresh(cmd.Context()); err != nil {
			return err
		}
		return s.Delete(cmd.Context(), args[0])
	},
}

func newTaskStore() *store.TaskStore {
	_ = godotenv.Load()
	cfg := config.Load()
	api := client.NewHTTPClient(
		cfg.APIBaseURL,
		time.Duration(cfg.RequestTimeoutSeconds)*time.Second,
	)
	return store.New(api)
}

func printTask(task model.Task) {
	due := ""
	if task.DueDate != nil {
		due = "  due " + task.DueDate.Format(time.RFC3339)
	}
	fmt.Printf("%s  %-11s %-6s %s%s\n", task.ID, task.Status, task.Priority, task.Title, due)
}

func init() {
	clientAddCmd.Flags().StringVar(&addDescription, "description", "", "task description")
	clientAddCmd.Flags().StringVar(&addPriority, "priority", "", "LOW, MEDIUM or HIGH")
	clientAddCmd.Flags().StringVar(&addStatus, "status", "", "initial status")
	clientAddCmd.Flags().StringVar(&addDueDate, "due", "", "due date, RFC 3339")

	clientUpdateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	clientUpdateCmd.Flags().StringVar(&updateDescription, "description", "", "new description")
	clientUpdateCmd.Flags().StringVar(&updatePriority, "priority", "", "LOW, MEDIUM or HIGH")
	clientUpdateCmd.Flags().StringVar(&updateStatus, "status", "", "new status")
	clientUpdateCmd.Flags().StringVar(&updateDueDate, "due", "", "due date, RFC 3339")
	clientUpdateCmd.Flags().BoolVar(&updateClearDue, "clear-due", false, "clear the due date")

	clientCmd.AddCommand(clientListCmd, clientAddCmd, clientUpdateCmd, clientDoneCmd, clientRmCmd)
	rootCmd.AddCommand(clientCmd)
}
