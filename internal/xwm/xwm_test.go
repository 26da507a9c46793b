package xwm

import (
	"context"
	"testing"

	"github.com/jezek/xgb"
)

type cmdModel struct {
	cmd Cmd
}

func (m cmdModel) Update(ctx context.Context, conn *xgb.Conn, msg Msg) (Model, Cmd) {
	return m, m.cmd
}

func TestHandleEvents_QuitReturnsClean(t *testing.T) {
	eventC := make(chan xgb.Event)
	msgC := make(chan Msg, 1)
	msgC <- struct{}{}

	if err := HandleEvents(context.Background(), nil, cmdModel{cmd: CmdQuit}, eventC, msgC); err != nil {
		t.Errorf("expected clean exit, got %v", err)
	}
}

func TestHandleEvents_ClosedEventChannelReturnsClean(t *testing.T) {
	eventC := make(chan xgb.Event)
	close(eventC)

	if err := HandleEvents(context.Background(), nil, cmdModel{}, eventC, nil); err != nil {
		t.Errorf("expected clean exit, got %v", err)
	}
}

func TestHandleEvents_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eventC := make(chan xgb.Event)
	if err := HandleEvents(ctx, nil, cmdModel{}, eventC, nil); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
