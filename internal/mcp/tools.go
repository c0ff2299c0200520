package mcp

import (
	"context"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winbridge/internal/remote"
)

const defaultCreateTimeout = 30 * time.Second

func createTimeout(seconds int) time.Duration {
	if seconds <= 0 {
		return defaultCreateTimeout
	}
	return time.Duration(seconds) * time.Second
}

func windowOptions(args CreateWindowInput) remote.Options {
	opts := remote.NewOptions()
	opts.Width = args.Width
	opts.Height = args.Height
	if args.X != nil {
		opts.X = *args.X
	}
	if args.Y != nil {
		opts.Y = *args.Y
	}
	opts.Title = args.Title
	opts.Show = args.Show
	opts.Resizable = args.Resizable
	opts.Frame = args.Frame
	opts.AlwaysOnTop = args.AlwaysOnTop
	return opts
}

func viewOptions(args CreateViewInput) remote.Options {
	opts := remote.NewOptions()
	opts.Width = args.Width
	opts.Height = args.Height
	if args.X != nil {
		opts.X = *args.X
	}
	if args.Y != nil {
		opts.Y = *args.Y
	}
	opts.Title = args.Title
	opts.Show = args.Show
	return opts
}

func (s *Server) handleCreateWindow(ctx context.Context, _ *mcpsdk.CallToolRequest, args CreateWindowInput) (*mcpsdk.CallToolResult, CreateWindowOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, createTimeout(args.Timeout))
	defer cancel()

	w, err := s.controller.CreateWindow(ctx, windowOptions(args), args.LoadTarget)
	if err != nil {
		s.logger.Warn("create_window failed", "target", args.LoadTarget, "error", err)
		return nil, CreateWindowOutput{}, err
	}

	s.logger.Info("window created", "id", w.ID, "target", args.LoadTarget)
	return nil, CreateWindowOutput{ID: w.ID}, nil
}

func (s *Server) handleCreateView(ctx context.Context, _ *mcpsdk.CallToolRequest, args CreateViewInput) (*mcpsdk.CallToolResult, CreateViewOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, createTimeout(args.Timeout))
	defer cancel()

	v, err := s.controller.CreateView(ctx, viewOptions(args))
	if err != nil {
		s.logger.Warn("create_view failed", "error", err)
		return nil, CreateViewOutput{}, err
	}

	s.logger.Info("view created", "id", v.ID)
	return nil, CreateViewOutput{ID: v.ID}, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	windows := s.controller.Windows()
	ids := make([]int, len(windows))
	for i, w := range windows {
		ids[i] = w.ID
	}
	return nil, ListWindowsOutput{IDs: ids}, nil
}

func (s *Server) handleListViews(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListViewsInput) (*mcpsdk.CallToolResult, ListViewsOutput, error) {
	views := s.controller.Views()
	ids := make([]int, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	return nil, ListViewsOutput{IDs: ids}, nil
}

func (s *Server) handleSetQuitBehavior(_ context.Context, _ *mcpsdk.CallToolRequest, args SetQuitBehaviorInput) (*mcpsdk.CallToolResult, SetQuitBehaviorOutput, error) {
	if err := s.controller.SetQuitOnAllClosed(args.QuitOnAllClosed); err != nil {
		return nil, SetQuitBehaviorOutput{}, err
	}
	return nil, SetQuitBehaviorOutput{QuitOnAllClosed: args.QuitOnAllClosed}, nil
}
