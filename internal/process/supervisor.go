package process

import (
	"fmt"
	"io"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Supervisor starts and tracks adapter processes and tears them down on
// shutdown. It is safe for concurrent use.
type Supervisor struct {
	mu        sync.RWMutex
	processes map[string]*Process

	closed atomic.Bool

	// onExit is called when a supervised process exits.
	onExit func(p *Process)
}

// SupervisorOption configures a Supervisor.
type SupervisorOption func(*Supervisor)

// WithExitCallback sets a callback invoked when a process exits.
func WithExitCallback(fn func(p *Process)) SupervisorOption {
	return func(s *Supervisor) {
		s.onExit = fn
	}
}

// NewSupervisor creates a process supervisor.
func NewSupervisor(opts ...SupervisorOption) *Supervisor {
	s := &Supervisor{
		processes: make(map[string]*Process),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches cmd as a supervised process with a generated session ID.
//
// stdin, stdout, and stderr are piped unless the command already has them
// wired. Returns ErrSupervisorShutdown after Shutdown has been called.
func (s *Supervisor) Start(name string, cmd *exec.Cmd) (*Process, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() {
		return nil, ErrSupervisorShutdown
	}

	proc := newProcess(uuid.New().String(), name, cmd)

	var opened []io.Closer
	closeAll := func() {
		for _, c := range opened {
			_ = c.Close()
		}
	}

	if cmd.Stdin == nil {
		pipe, err := cmd.StdinPipe()
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("create stdin pipe: %w", err)
		}
		proc.Stdin = pipe
		opened = append(opened, pipe)
	}
	if cmd.Stdout == nil {
		pipe, err := cmd.StdoutPipe()
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("create stdout pipe: %w", err)
		}
		proc.Stdout = pipe
		opened = append(opened, pipe)
	}
	if cmd.Stderr == nil {
		pipe, err := cmd.StderrPipe()
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("create stderr pipe: %w", err)
		}
		proc.Stderr = pipe
		opened = append(opened, pipe)
	}

	if err := proc.start(); err != nil {
		closeAll()
		return nil, err
	}

	s.processes[proc.ID] = proc

	go func() {
		<-proc.Done()
		s.mu.Lock()
		delete(s.processes, proc.ID)
		s.mu.Unlock()
		if s.onExit != nil {
			s.onExit(proc)
		}
	}()

	return proc, nil
}

// Get returns a tracked process by session ID.
func (s *Supervisor) Get(id string) (*Process, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.processes[id]
	return p, ok
}

// Running returns the currently tracked processes.
func (s *Supervisor) Running() []*Process {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Process, 0, len(s.processes))
	for _, p := range s.processes {
		result = append(result, p)
	}
	return result
}

// Shutdown terminates all tracked processes, escalating to SIGKILL after
// the grace period. Further Start calls fail with ErrSupervisorShutdown.
func (s *Supervisor) Shutdown(grace time.Duration) {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}

	for _, p := range s.Running() {
		_ = p.Terminate()
	}

	deadline := time.After(grace)
	for _, p := range s.Running() {
		select {
		case <-p.Done():
		case <-deadline:
			_ = p.Kill()
			<-p.Done()
		}
	}
}

// Bridge copies bytes between the host's stdio and the adapter process
// until the process's streams close. The protocol flowing through is not
// interpreted.
//
// Bridge returns when the adapter's stdout is exhausted; the hostIn copy
// runs until the adapter's stdin closes.
func Bridge(p *Process, hostIn io.Reader, hostOut, hostErr io.Writer) {
	if p.Stdin != nil && hostIn != nil {
		go func() {
			_, _ = io.Copy(p.Stdin, hostIn)
			_ = p.Stdin.Close()
		}()
	}

	if p.Stderr != nil && hostErr != nil {
		go func() {
			_, _ = io.Copy(hostErr, p.Stderr)
		}()
	}

	if p.Stdout != nil && hostOut != nil {
		_, _ = io.Copy(hostOut, p.Stdout)
	}
}
