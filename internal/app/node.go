package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weave/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/adapters/telemetry"          //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/weave/internal/engine/registry"
	"go.trai.ch/weave/internal/engine/session"
)

const (
	// ServiceNodeID is the unique identifier for the session service Graft node.
	ServiceNodeID graft.ID = "engine.service"
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// Service Node
	graft.Register(graft.Node[*session.Service]{
		ID:        ServiceNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*session.Service, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			factory := NewSessionFactory(registry.Default, log)
			return session.NewService(factory, tracer, log), nil
		},
	})

	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			progrock.NodeID,
			ServiceNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			service, err := graft.Dep[*session.Service](ctx)
			if err != nil {
				return nil, err
			}

			progress, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, service, progress, tracer, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			ServiceNodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	service, err := graft.Dep[*session.Service](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(application, log, service), nil
}
