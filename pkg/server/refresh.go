package server

import (
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

// Refresh reloads the series and redraws the chart, which re-renders the indicator.
func (s *Server) Refresh() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh()
}

// StartRefresh redraws the chart on the cron schedule, keeping the indicator metrics current
// when no image is requested.
func (s *Server) StartRefresh(schedule string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if err := s.Refresh(); err != nil {
			log.WithError(err).Error("unable to refresh the chart")
		}
	}); err != nil {
		return nil, errors.Wrapf(err, "invalid refresh schedule %q", schedule)
	}

	c.Start()
	return c, nil
}
