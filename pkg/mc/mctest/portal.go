// Package mctest provides in-memory MC portals for tests and offline use.
// None of them talk to hardware: Echo completes every command in place, and
// Replay serves canned responses keyed by command id, loadable from YAML
// fixture files.
package mctest

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"firestige.xyz/dpsw/pkg/mc"
)

// Echo is a portal that completes every command with StatusOK and leaves the
// buffer untouched — an identity passthrough. Encoded request fields read
// back as response fields, which is exactly what header and payload codec
// tests want.
type Echo struct {
	mu        sync.Mutex
	submitted []mc.Command
}

// Submit records a copy of the command and completes it successfully.
func (e *Echo) Submit(_ context.Context, cmd *mc.Command) error {
	e.mu.Lock()
	e.submitted = append(e.submitted, *cmd)
	e.mu.Unlock()
	cmd.SetStatus(mc.StatusOK)
	return nil
}

// Submitted returns copies of every command seen so far, in order.
func (e *Echo) Submitted() []mc.Command {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]mc.Command, len(e.submitted))
	copy(out, e.submitted)
	return out
}

// Last returns the most recently submitted command, or nil.
func (e *Echo) Last() *mc.Command {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.submitted) == 0 {
		return nil
	}
	c := e.submitted[len(e.submitted)-1]
	return &c
}

// Response is one canned completion in a replay fixture.
type Response struct {
	// Command is the full 16-bit command id (base<<4 | version) this
	// response answers.
	Command uint16 `yaml:"command"`
	// Status is the completion status to report; zero is success.
	Status uint8 `yaml:"status"`
	// Token, when nonzero, is written back into the response header the way
	// the firmware answers an open command.
	Token uint16 `yaml:"token"`
	// Params is the response parameter area as a hex string; whitespace is
	// ignored. Shorter than 56 bytes means the tail of the request's
	// parameter area is left as submitted.
	Params string `yaml:"params"`
}

// Fixture is the on-disk YAML shape of a replay script.
type Fixture struct {
	Responses []Response `yaml:"responses"`
}

// Replay is a portal that answers each command with the canned response
// registered for its command id, recording submissions like Echo. Commands
// without a registered response complete with StatusOK and an untouched
// buffer.
type Replay struct {
	Echo
	mu        sync.Mutex
	responses map[uint16]Response
}

// NewReplay builds a replay portal from a list of canned responses.
func NewReplay(responses ...Response) (*Replay, error) {
	r := &Replay{responses: make(map[uint16]Response, len(responses))}
	for _, resp := range responses {
		if _, err := decodeParams(resp.Params); err != nil {
			return nil, fmt.Errorf("mctest: response 0x%04x: %w", resp.Command, err)
		}
		r.responses[resp.Command] = resp
	}
	return r, nil
}

// LoadReplay reads a YAML fixture file and builds a replay portal from it.
func LoadReplay(path string) (*Replay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mctest: read fixture: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("mctest: parse fixture %s: %w", path, err)
	}
	return NewReplay(f.Responses...)
}

// Submit completes the command from the canned response for its command id.
func (r *Replay) Submit(ctx context.Context, cmd *mc.Command) error {
	if err := r.Echo.Submit(ctx, cmd); err != nil {
		return err
	}
	r.mu.Lock()
	resp, ok := r.responses[uint16(cmd.CommandID())]
	r.mu.Unlock()
	if !ok {
		return nil
	}
	if resp.Params != "" {
		p, _ := decodeParams(resp.Params)
		copy(cmd.Params[:], p)
	}
	if resp.Token != 0 {
		cmd.Header = mc.EncodeHeader(cmd.CommandID(), 0, mc.Token(resp.Token))
	}
	cmd.SetStatus(mc.Status(resp.Status))
	return mc.Status(resp.Status).Err()
}

func decodeParams(s string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' {
			return -1
		}
		return r
	}, s)
	p, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("bad params hex: %w", err)
	}
	if len(p) > mc.ParamsSize {
		return nil, fmt.Errorf("params longer than %d bytes", mc.ParamsSize)
	}
	return p, nil
}
