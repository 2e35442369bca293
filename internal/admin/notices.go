package admin

import "time"

const noticeTTL = 4 * time.Second

// Notice is a transient toast shown above the console tables.
type Notice struct {
	Level     string // "success" or "error"
	Text      string
	ExpiresAt time.Time
}

func (c *Controller) notifySuccess(text string) { c.notify("success", text) }
func (c *Controller) notifyError(text string)   { c.notify("error", text) }

func (c *Controller) notify(level, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, Notice{
		Level:     level,
		Text:      text,
		ExpiresAt: c.now().Add(noticeTTL),
	})
}

// Notices returns the not-yet-expired toasts and drops the rest.
func (c *Controller) Notices() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	kept := c.notices[:0]
	for _, n := range c.notices {
		if n.ExpiresAt.After(now) {
			kept = append(kept, n)
		}
	}
	c.notices = kept
	return append([]Notice(nil), kept...)
}
