package tui

import (
	"testing"
	"time"
)

func TestTickerStartArmsOnce(t *testing.T) {
	tk := NewTicker(75 * time.Millisecond)

	if tk.Pending() != nil {
		t.Error("stopped ticker should not schedule a tick")
	}

	tk.Start()
	if !tk.Active() {
		t.Error("ticker should be active after Start")
	}
	if tk.Pending() == nil {
		t.Error("Start should arm the first tick")
	}
	if tk.Pending() != nil {
		t.Error("first tick should only be scheduled once")
	}
}

func TestTickerAcceptsCurrentGeneration(t *testing.T) {
	tk := NewTicker(time.Millisecond)
	tk.Start()

	if !tk.Accept(TickMsg{Gen: tk.gen}) {
		t.Error("tick from the running generation should be accepted")
	}
	if tk.Accept(TickMsg{Gen: tk.gen - 1}) {
		t.Error("tick from an older generation should be dropped")
	}
}

func TestTickerStopDropsInFlightTicks(t *testing.T) {
	tk := NewTicker(time.Millisecond)
	tk.Start()
	inFlight := TickMsg{Gen: tk.gen}

	tk.Stop()
	if tk.Accept(inFlight) {
		t.Error("tick scheduled before Stop should be dropped")
	}
	if tk.Next() != nil {
		t.Error("stopped ticker should not schedule more ticks")
	}

	// A restart must not revive the old generation either
	tk.Start()
	if tk.Accept(inFlight) {
		t.Error("tick from a previous run should be dropped after restart")
	}
}

func TestTickerNext(t *testing.T) {
	tk := NewTicker(time.Millisecond)
	tk.Start()

	// Until the first tick is scheduled, Next must not add a second chain
	if tk.Next() != nil {
		t.Error("Next should wait for Pending after Start")
	}
	tk.Pending()
	if tk.Next() == nil {
		t.Error("active ticker should schedule the next tick")
	}
}

func TestTickerCmdCarriesGeneration(t *testing.T) {
	tk := NewTicker(time.Millisecond)
	tk.Start()
	cmd := tk.Pending()

	msg, ok := cmd().(TickMsg)
	if !ok {
		t.Fatalf("tick command produced %T, expected TickMsg", cmd())
	}
	if !tk.Accept(msg) {
		t.Errorf("tick gen %d not accepted by ticker at gen %d", msg.Gen, tk.gen)
	}
}
