package logic

import "time"

// DryRun exposes the dry run preview with the processor's own streams.
func DryRun(p *Processor) error {
	return dryRun(p, len(p.cfg.Files), 0, time.Now())
}
