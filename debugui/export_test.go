package debugui

import "github.com/plus3/stackfall/session"

func (si *SessionInspector) EditRules(cfg session.Config) session.Config {
	si.rules = cfg
	si.applyRules()
	return si.rules
}

func (si *SessionInspector) TypeInitials(text string) bool {
	si.initials = text
	return si.confirmInitials()
}
