package dialog

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/projectunified/unidialog-go/internal/packet"
)

func TestClearDialogPhaseOverride(t *testing.T) {
	m, _, _ := newTestManager(t)
	u := &fakeUser{phase: packet.PhasePlay}

	if err := m.ClearDialogPhase(u, true); err != nil {
		t.Fatal(err)
	}
	if err := m.ClearDialogPhase(u, false); err != nil {
		t.Fatal(err)
	}

	sent := u.Sent()
	if len(sent) != 2 {
		t.Fatalf("sent %d packets", len(sent))
	}
	if sent[0].PacketType() != packet.TypeConfigurationClearDialog {
		t.Errorf("override true sent %v", sent[0].PacketType())
	}
	if sent[1].PacketType() != packet.TypePlayClearDialog {
		t.Errorf("override false sent %v", sent[1].PacketType())
	}
}

func TestClearDialogUserFollowsPhase(t *testing.T) {
	cases := []struct {
		phase packet.Phase
		want  packet.Type
	}{
		{packet.PhaseConfiguration, packet.TypeConfigurationClearDialog},
		{packet.PhasePlay, packet.TypePlayClearDialog},
		{packet.PhaseLogin, packet.TypePlayClearDialog},
	}
	m, _, _ := newTestManager(t)
	for _, c := range cases {
		u := &fakeUser{phase: c.phase}
		if err := m.ClearDialogUser(u); err != nil {
			t.Fatalf("%v: %v", c.phase, err)
		}
		sent := u.Sent()
		if len(sent) != 1 || sent[0].PacketType() != c.want {
			t.Errorf("%v: sent %v, want one %v", c.phase, sent, c.want)
		}
	}
}

func TestClearDialogUserPropagatesSendError(t *testing.T) {
	m, _, _ := newTestManager(t)
	u := &fakeUser{phase: packet.PhasePlay, err: errSend}
	err := m.ClearDialogUser(u)
	if !errors.Is(err, errSend) {
		t.Fatalf("expected wrapped send error, got %v", err)
	}
}

func TestClearDialogByID(t *testing.T) {
	m, _, peers := newTestManager(t)
	p := peers.add(packet.PhaseConfiguration)

	if !m.ClearDialog(p.id) {
		t.Fatal("expected true for a live peer")
	}
	sent := p.user.Sent()
	if len(sent) != 1 || sent[0].PacketType() != packet.TypeConfigurationClearDialog {
		t.Fatalf("sent %v, want configuration clear only", sent)
	}
}

func TestClearDialogUnknownPeer(t *testing.T) {
	m, _, peers := newTestManager(t)
	other := peers.add(packet.PhasePlay)

	if m.ClearDialog(uuid.New()) {
		t.Fatal("expected false for an unknown peer")
	}
	if peers.userHits != 0 {
		t.Errorf("user lookup should not happen, hits=%d", peers.userHits)
	}
	if len(other.user.Sent()) != 0 {
		t.Error("nothing may be sent")
	}
}

func TestClearDialogMissingUser(t *testing.T) {
	m, _, peers := newTestManager(t)
	p := peers.add(packet.PhasePlay)
	peers.noUser = true

	if m.ClearDialog(p.id) {
		t.Fatal("expected false when the transport user is missing")
	}
	if len(p.user.Sent()) != 0 {
		t.Error("nothing may be sent")
	}
}

func TestClearDialogSendFailureStillResolved(t *testing.T) {
	m, _, peers := newTestManager(t)
	p := peers.add(packet.PhasePlay)
	p.user.err = errSend

	if !m.ClearDialog(p.id) {
		t.Fatal("a resolved peer reports true even if the send fails")
	}
}
