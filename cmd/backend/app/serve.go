package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"musicplayer/pkg/folders"
	fbhttp "musicplayer/pkg/http"
	"musicplayer/pkg/settings"
	"musicplayer/pkg/votes"

	"github.com/spf13/afero"
	"k8s.io/klog/v2"
)

const shutdownTimeout = 10 * time.Second

func newHandler(server *settings.Server, fs afero.Fs) (http.Handler, *folders.Checker, error) {
	registry, err := folders.NewRegistry(server.Folders)
	if err != nil {
		return nil, nil, err
	}

	selection, err := folders.NewSelection(registry, server.DefaultFolder)
	if err != nil {
		return nil, nil, err
	}

	checker := folders.NewChecker(fs, registry)
	checker.Check()

	library := folders.NewLibrary(fs, selection, checker, folders.Options{
		StaticURL: server.BaseURL + server.StaticURL,
		VideoDir:  server.VideoDir,
	})

	home, err := fbhttp.LoadHomeTemplate(fs, server.TemplatePath)
	if err != nil {
		return nil, nil, err
	}

	handler, err := fbhttp.NewHandler(server, library, votes.NewCounter(), home)
	if err != nil {
		return nil, nil, err
	}
	return handler, checker, nil
}

func runServer(ctx context.Context, server *settings.Server, fs afero.Fs) error {
	if ctx == nil {
		ctx = context.Background()
	}

	handler, checker, err := newHandler(server, fs)
	if err != nil {
		return err
	}

	c, err := InitCrontabs(checker, server.CheckSchedule)
	if err != nil {
		return err
	}
	defer c.Stop()

	listener, err := net.Listen("tcp", server.ListenAddr())
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGHUP, syscall.SIGTERM)
	defer signal.Stop(sigc)
	go cleanupHandler(ctx, srv, sigc)

	klog.Infof("Listening on %s, active folder %s", listener.Addr().String(), server.DefaultFolder)
	if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	klog.Info("Server stopped")
	return nil
}

func cleanupHandler(ctx context.Context, srv *http.Server, c chan os.Signal) {
	select {
	case sig := <-c:
		klog.Infof("Caught signal %s: shutting down.", sig)
	case <-ctx.Done():
		klog.Infof("Context done: shutting down.")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		klog.Errorf("shutdown failed: %v", err)
	}
}
