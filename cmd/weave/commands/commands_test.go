package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"go.trai.ch/weave/cmd/weave/commands"
	"go.trai.ch/weave/internal/adapters/logger"
	"go.trai.ch/weave/internal/adapters/telemetry"
	"go.trai.ch/weave/internal/app"
	"go.trai.ch/weave/internal/core/ports/mocks"
	"go.trai.ch/weave/internal/engine/registry"
	"go.trai.ch/weave/internal/engine/session"
	"go.uber.org/mock/gomock"
)

func newCLI(t *testing.T, ctrl *gomock.Controller) (*commands.CLI, *mocks.MockConfigLoader) {
	t.Helper()
	log := logger.NewWithOptions(&bytes.Buffer{}, "error")
	tracer := telemetry.NewNoOpTracer()
	loader := mocks.NewMockConfigLoader(ctrl)
	mockTelemetry := mocks.NewMockTelemetry(ctrl)
	mockTelemetry.EXPECT().Close().Return(nil).AnyTimes()

	service := session.NewService(app.NewSessionFactory(registry.NewTable(), log), tracer, log)
	a := app.New(loader, service, mockTelemetry, tracer, log)
	return commands.New(a), loader
}

func TestVersionCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	cli, _ := newCLI(t, ctrl)

	cli.SetArgs([]string{"version"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
}

func TestRunCommand_PropagatesConfigPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	cli, loader := newCLI(t, ctrl)

	boom := errors.New("unreadable config")
	loader.EXPECT().Load("custom.yaml").Return(nil, boom).Times(1)

	cli.SetArgs([]string{"run", "-c", "custom.yaml"})
	err := cli.Execute(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("expected loader error, got: %v", err)
	}
}

func TestGetConfigPath_Default(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	cli, _ := newCLI(t, ctrl)

	if got := cli.GetConfigPath(); got != "weave.yaml" {
		t.Errorf("expected default config path, got: %q", got)
	}
}

func TestRunCommand_RejectsPositionalArgs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	cli, _ := newCLI(t, ctrl)

	cli.SetArgs([]string{"run", "unexpected"})
	if err := cli.Execute(context.Background()); err == nil {
		t.Error("expected an argument error")
	}
}
