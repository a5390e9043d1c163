package main

import (
	stdContext "context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/remivalade/MintMyMood/cronjob"
	"github.com/remivalade/MintMyMood/logger"
	"github.com/remivalade/MintMyMood/minter"
	"github.com/remivalade/MintMyMood/services/context"
	"github.com/remivalade/MintMyMood/services/routes"
	"github.com/remivalade/MintMyMood/services/utils"

	"github.com/gorilla/mux"
)

func main() {
	ctx, err := context.BuildContext()
	if err != nil {
		fmt.Printf("%v\n", err)
		return
	}

	cancelChan := make(chan os.Signal, 1)
	signal.Notify(cancelChan, os.Interrupt, syscall.SIGTERM)

	// Prometheus metrics
	utils.InitMetricsServer(&ctx.Config().Metrics)

	chainClients, err := minter.NewChainClients(stdContext.Background(), ctx.Chains(), ctx.Config().Signer)
	if err != nil {
		fmt.Printf("%v\n", err)
		return
	}
	m := minter.New(minter.NewMinterDB(ctx.DB()), chainClients, 0)

	go cronjob.RunCronjob(cronjob.NewExpiryCronjob(ctx.DB(), ctx.Config().ExpiryCronjob))

	receiptClients, err := cronjob.NewReceiptClients(stdContext.Background(), ctx.Chains())
	if err != nil {
		fmt.Printf("%v\n", err)
		return
	}
	go cronjob.RunCronjob(cronjob.NewReconcileCronjob(
		cronjob.NewReconcileDBGorm(ctx.DB()), receiptClients, ctx.Config().ReconcileCronjob))

	muxRouter := mux.NewRouter()
	muxRouter.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	router := utils.NewSwaggerRouter(muxRouter, "MintMyMood API", "0.1.0")
	routes.AddThoughtRoutes(router, ctx, m)
	routes.AddMintRoutes(router, ctx, m)
	routes.AddPreviewRoutes(router, ctx)
	routes.AddStatsRoutes(router, ctx)
	router.Finalize()

	srv := &http.Server{
		Handler:      muxRouter,
		Addr:         ctx.Config().Services.Address,
		WriteTimeout: 30 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error: %v", err)
		}
	}()
	logger.Info("listening on %s", ctx.Config().Services.Address)

	<-cancelChan
	shutdownCtx, cancel := stdContext.WithTimeout(stdContext.Background(), 10*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx)
	logger.Info("stopped MintMyMood services")
}
