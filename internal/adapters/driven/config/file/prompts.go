package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/reparo-labs/partassist/internal/core/ports/driven"
	"github.com/reparo-labs/partassist/internal/logger"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptStore loads LLM prompts from user-editable files on disk.
// Prompts are loaded from a configurable directory with fallback to
// embedded defaults. Edits on disk take effect without a restart: a
// filesystem watcher drops the cache whenever a prompt file changes.
//
// The store uses lazy initialisation - files are only created when
// first accessed, not in the constructor.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	watcher   *fsnotify.Watcher
	initOnce  sync.Once
	initErr   error
}

// defaultPrompts contains embedded default prompts.
// These are used when user files don't exist and as the initial
// content for new files.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var defaultPrompts = map[string]string{
	driven.PromptClassify: `You are a helpful and knowledgeable appliance repair assistant who specializes in refrigerator and dishwasher parts.

Your job is to analyze user queries and classify them into one of three categories:
1. "exact" — when the user asks specifically about how to install a part or get info about a part number.
2. "compatibility" — when the user asks if a specific part is compatible with their appliance model.
3. "semantic" — if it's a general symptom-based or brand/product inquiry.

Strictly return a JSON with:
"type": one of ["exact", "compatibility", "semantic", "out_of_scope"],
"part_id": if mentioned (e.g., PS11752778),
"model_id": if mentioned (e.g., WDT780SAEM1),
"brand": if any (e.g., Whirlpool),
"symptoms": if any (e.g., ice not working, leaking water),
"product_types": if any (e.g., refrigerator, dishwasher)

Only answer about refrigerator and dishwasher part questions. If the query is about something else, mark it as "out_of_scope".
Now process this query: %s`,

	driven.PromptSynthesizeSystem: `You are a helpful, expert customer service agent for appliance parts — specifically refrigerators and dishwashers. Your role is to assist users with part installation, compatibility, or troubleshooting using only the context provided. Avoid guessing. If context is missing, politely say so — but if installation time or difficulty are missing, you may suggest a typical time range like 'usually under 30 minutes' and assume it's easy if not specified.

Answer must:
- Be clear, specific, and confident
- Stick to appliance part knowledge
- Include relevant installation difficulty and estimated time if possible
- Return the part's URL if available or else say 'not available'
- Return youtube video from context if available or else say 'not available'`,
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.partassist/prompts/.
//
// The constructor does not perform any I/O - directory creation, file
// writes, and the change watcher all start lazily on first Load().
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(home, ".partassist", "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the prompt template for the given name.
// On first call, initialises the prompt directory, creates default
// files, and starts the change watcher. Returns the cached value if
// available, otherwise loads from file. Falls back to the embedded
// default if the file doesn't exist.
func (s *PromptStore) Load(name string) (string, error) {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		// Fall back to embedded defaults if init failed
		if prompt, ok := defaultPrompts[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	// Check cache first (read lock)
	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	// Load from file (no lock held during I/O)
	prompt, err := s.loadFromFile(name)
	if err != nil {
		// Fall back to embedded default
		if defaultPrompt, ok := defaultPrompts[name]; ok {
			return defaultPrompt, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	// Cache the result (write lock)
	// Use double-check pattern to avoid overwriting concurrent loads
	s.mu.Lock()
	if _, ok := s.cache[name]; !ok {
		s.cache[name] = prompt
	} else {
		// Another goroutine loaded it first, use their value
		prompt = s.cache[name]
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Close stops the change watcher.
func (s *PromptStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher == nil {
		return nil
	}
	err := s.watcher.Close()
	s.watcher = nil
	return err
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// initialise creates the prompt directory, default files, and the
// change watcher. Called once via sync.Once on first Load().
func (s *PromptStore) initialise() {
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	// Create default prompt files (only if they don't exist)
	for name, content := range defaultPrompts {
		path := filepath.Join(s.promptDir, name+".txt")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("create default prompt %q: %w", name, err)
				return
			}
		}
	}

	s.startWatcher()
}

// startWatcher invalidates the cache whenever a prompt file changes.
// Watch failures are logged, not fatal: prompts still load, they just
// need a restart to pick up edits.
func (s *PromptStore) startWatcher() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("Prompt watcher unavailable: %v", err)
		return
	}
	if err := watcher.Add(s.promptDir); err != nil {
		logger.Warn("Prompt watcher failed to watch %s: %v", s.promptDir, err)
		_ = watcher.Close()
		return
	}

	s.mu.Lock()
	s.watcher = watcher
	s.mu.Unlock()

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Remove) {
					logger.Debug("Prompt file changed (%s), reloading", event.Name)
					s.Reload()
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
}

// loadFromFile reads a prompt from disk.
func (s *PromptStore) loadFromFile(name string) (string, error) {
	path := filepath.Join(s.promptDir, name+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
