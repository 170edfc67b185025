package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"notes-crud/internal/client"
)

var (
	serverAddr  string
	routePrefix string
	noteTitle   string
	noteContent string
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running notes service",
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := requestContext()
		defer cancel()

		note, err := newClient().Create(ctx, noteTitle, noteContent)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), note)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := requestContext()
		defer cancel()

		notes, err := newClient().List(ctx)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), notes)
	},
}

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get a note by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()

		note, err := newClient().Get(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), note)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Replace title and content of a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()

		result, err := newClient().Update(ctx, id, noteTitle, noteContent)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note (no error if it does not exist)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()

		result, err := newClient().Delete(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clientCmd)
	clientCmd.PersistentFlags().StringVar(&serverAddr, "addr", envOr("SERVER_ADDRESS", "http://localhost:8080"), "Base URL of the notes service")
	clientCmd.PersistentFlags().StringVar(&routePrefix, "prefix", envOr("NOTES_PREFIX", "/notes"), "Route prefix (/notes or /api/notes)")

	for _, cmd := range []*cobra.Command{createCmd, updateCmd} {
		cmd.Flags().StringVarP(&noteTitle, "title", "t", "", "Note title")
		cmd.Flags().StringVarP(&noteContent, "content", "b", "", "Note content")
		_ = cmd.MarkFlagRequired("title")
	}

	clientCmd.AddCommand(createCmd, listCmd, getCmd, updateCmd, deleteCmd)
}

func newClient() *client.Client {
	return client.New(serverAddr, routePrefix)
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid note id %q", s)
	}
	return id, nil
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
