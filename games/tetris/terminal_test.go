package tetris

import (
	"errors"
	"testing"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyIntentBindings(t *testing.T) {
	cases := []struct {
		char rune
		key  keyboard.Key
		want intent
	}{
		{'a', 0, intentLeft},
		{0, keyboard.KeyArrowRight, intentRight},
		{'s', 0, intentDown},
		{0, keyboard.KeyArrowUp, intentRotateZ},
		{'i', 0, intentForward},
		{'k', 0, intentBackward},
		{'x', 0, intentRotateX},
		{'y', 0, intentRotateY},
		{'c', 0, intentStore},
		{0, keyboard.KeySpace, intentHardDrop},
		{'q', 0, intentQuit},
		{0, keyboard.KeyEsc, intentQuit},
	}
	for _, c := range cases {
		in, ok := keyIntent(c.char, c.key)
		require.True(t, ok, "char %q key %v should be bound", c.char, c.key)
		assert.Equal(t, c.want, in)
	}

	_, ok := keyIntent('z', 0)
	assert.False(t, ok, "unbound keys are ignored")
}

func TestReadKeysExitsOnDoneWhilePollErrors(t *testing.T) {
	// GetKey fails forever once the keyboard is closed; the reader must not
	// spin on after the round ends.
	poll := func() (rune, keyboard.Key, error) {
		return 0, 0, errors.New("keyboard closed")
	}

	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		readKeys(poll, make(chan intent, 8), make(chan struct{}), done)
		close(exited)
	}()

	close(done)
	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("reader kept running after done closed")
	}
}

func TestReadKeysExitsOnDoneWhileSendBlocks(t *testing.T) {
	keys := make(chan rune, 4)
	poll := func() (rune, keyboard.Key, error) {
		return <-keys, 0, nil
	}

	// No consumer: the first key fills the buffer, the second blocks in the
	// send until done closes.
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		readKeys(poll, make(chan intent, 1), make(chan struct{}), done)
		close(exited)
	}()

	keys <- 'a'
	keys <- 'a'
	time.Sleep(20 * time.Millisecond)
	close(done)

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("reader stayed blocked on a full intent channel")
	}
}

func TestReadKeysQuitSignal(t *testing.T) {
	keys := make(chan rune, 4)
	poll := func() (rune, keyboard.Key, error) {
		return <-keys, 0, nil
	}

	intents := make(chan intent, 8)
	quit := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		readKeys(poll, intents, quit, make(chan struct{}))
		close(exited)
	}()

	keys <- 'd'
	keys <- 'q'

	select {
	case <-quit:
	case <-time.After(time.Second):
		t.Fatal("quit never signaled")
	}
	<-exited
	assert.Equal(t, intentRight, <-intents, "intents before quit still arrive")
}
