package api

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vfg2006/meta-sync-agent/internal/config"
)

func TestRunFalhaQuandoPortaOcupada(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	_, port, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.Server{Host: "127.0.0.1", Port: port},
	}

	srv, err := New(cfg, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// A porta já está em uso; Run deve devolver o erro de bind em vez de
	// seguir aguardando sinais
	err = srv.Run(ctx)
	require.Error(t, err)
}

func TestRunEncerraComCancelamentoDeContexto(t *testing.T) {
	cfg := &config.Config{
		Server: config.Server{Host: "127.0.0.1", Port: "0"},
	}

	srv, err := New(cfg, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run não encerrou após o cancelamento do contexto")
	}
}
