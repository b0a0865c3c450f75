package session

import "testing"

func TestSessionStartsInactive(t *testing.T) {
	s := New()

	topic, threadID, ok := s.Active()
	if ok {
		t.Error("Expected a fresh session to be inactive")
	}
	if topic != "" || threadID != 0 {
		t.Errorf("Expected empty session, got (%q, %d)", topic, threadID)
	}
}

func TestSetActiveOverwritesBothFields(t *testing.T) {
	s := New()

	s.SetActive("Foo", 10)
	topic, threadID, ok := s.Active()
	if !ok || topic != "Foo" || threadID != 10 {
		t.Fatalf("Expected (Foo, 10, true), got (%q, %d, %v)", topic, threadID, ok)
	}

	// A later topic fully replaces the previous one, no merge.
	s.SetActive("Bar", 20)
	topic, threadID, ok = s.Active()
	if !ok || topic != "Bar" || threadID != 20 {
		t.Errorf("Expected (Bar, 20, true), got (%q, %d, %v)", topic, threadID, ok)
	}
}
