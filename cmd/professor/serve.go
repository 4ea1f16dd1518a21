package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/professor/internal/config"
	"github.com/saulo-duarte/professor/internal/container"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var lambdaMode bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the /ask backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := container.New(cmd.Context(), settings)

			if lambdaMode || os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
				config.Logger().Info("Starting professor backend on AWS Lambda")
				lambda.Start(chiadapter.New(c.Router).ProxyWithContext)
				return nil
			}

			return listenAndServe(cmd.Context(), fmt.Sprintf(":%d", settings.Port), c.Router)
		},
	}
	cmd.Flags().BoolVar(&lambdaMode, "lambda", false, "serve API Gateway proxy events instead of HTTP")
	return cmd
}

// listenAndServe runs srv until ctx is done or an interrupt arrives, then
// shuts it down gracefully.
func listenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		config.Logger().Infof("Listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	config.Logger().Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
