package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/professor/internal/container"
	"github.com/saulo-duarte/professor/internal/web"
)

func newWebCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "web",
		Short: "Serve the browser client",
		RunE: func(cmd *cobra.Command, args []string) error {
			wc, err := container.NewWeb(settings)
			if err != nil {
				return err
			}
			return listenAndServe(cmd.Context(), fmt.Sprintf(":%d", settings.WebPort), web.Routes(wc.Handler))
		},
	}
}
