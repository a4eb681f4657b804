package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ATenderholt/rainbow-filedata/internal/logging"
	"github.com/ATenderholt/rainbow-filedata/internal/settings"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

func init() {
	logger = logging.NewLogger()
}

func main() {
	if os.Getenv(settings.EnvFunctionName) != "" {
		startLambda()
		return
	}

	cfg, output, err := settings.FromFlags(os.Args[0], os.Args[1:])
	if err == flag.ErrHelp {
		fmt.Println(output)
		os.Exit(2)
	} else if err != nil {
		fmt.Println("got error:", err)
		fmt.Println("output:\n", output)
		os.Exit(1)
	}

	logging.SetDebug(cfg.IsDebug)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		s := <-c
		logger.Infof("Received signal %v", s)
		cancel()
	}()

	if err := start(ctx, cfg); err != nil {
		logger.Errorf("Failed to start: %v", err)
		os.Exit(1)
	}
}

// startLambda builds the application once per cold start; the DynamoDB
// client is reused by every invocation handled by this process.
func startLambda() {
	cfg, err := settings.FromEnvironment(os.LookupEnv)
	if err != nil {
		logger.Fatalf("Unable to load configuration: %v", err)
	}

	logging.SetDebug(cfg.IsDebug)

	svc, err := InjectHandler(cfg)
	if err != nil {
		logger.Fatalf("Unable to initialize handler: %v", err)
	}

	logger.Infof("Starting function %s writing to table %s", cfg.FunctionName, cfg.Table)
	lambda.Start(svc.Handle)
}

func start(ctx context.Context, config *settings.Config) error {
	logger.Info("Starting up ...")

	app, err := InjectApp(config)
	if err != nil {
		logger.Errorf("Unable to initialize application: %v", err)
		return err
	}

	err = app.Start()
	if err != nil {
		logger.Errorf("Unable to start application: %v", err)
		return err
	}

	<-ctx.Done()

	logger.Info("Shutting down ...")
	err = app.Shutdown()
	if err != nil {
		logger.Error("Error when shutting down app")
	}

	return nil
}
