package session

// Advance feeds dt seconds of wall time to whichever timer the current state runs: the
// countdown and restart delay, or gravity while Playing. Paused and AwaitingNameEntry
// consume nothing.
func (s *Session) Advance(dt float64) {
	switch s.state {
	case CountingDown, GameOver:
		s.Countdown(dt)
	case Playing:
		s.Tick(dt)
	}
}

// Tick runs gravity for dt seconds, descending the active piece one row when the clock
// crosses a cadence boundary. It is ignored outside Playing.
func (s *Session) Tick(dt float64) {
	if s.state != Playing {
		return
	}
	if s.clock.Advance(dt, s.cadence()) {
		s.step()
	}
}

// Countdown runs the pre-round countdown and the game over restart delay. When the
// countdown expires play begins; when the restart delay expires a new round starts with
// the same rules.
func (s *Session) Countdown(dt float64) {
	switch s.state {
	case CountingDown:
		s.timer -= dt
		if s.timer <= 0 {
			s.timer = 0
			s.state = Playing
		}
	case GameOver:
		s.timer -= dt
		if s.timer <= 0 {
			s.StartNewRound(s.cfg.AntiDrought)
		}
	}
}

// Pause freezes a round in progress.
func (s *Session) Pause() {
	if s.state == Playing {
		s.state = Paused
	}
}

// Resume continues a paused round, through a fresh countdown when the config asks for one.
func (s *Session) Resume() {
	if s.state != Paused {
		return
	}
	if s.cfg.CountdownOnResume {
		s.state = CountingDown
		s.timer = s.cfg.CountdownSeconds
		return
	}
	s.state = Playing
}

// TogglePause pauses a running round or resumes a paused one.
func (s *Session) TogglePause() {
	switch s.state {
	case Playing:
		s.Pause()
	case Paused:
		s.Resume()
	}
}

// ConfirmNameEntry records the player's initials for the finished round and moves on to
// GameOver. It is ignored unless a name is being awaited.
func (s *Session) ConfirmNameEntry(initials string) {
	if s.state != AwaitingNameEntry {
		return
	}
	s.initials = initials
	s.gameOver()
}

func (s *Session) topOut() {
	if s.cfg.NameEntry {
		s.state = AwaitingNameEntry
		s.timer = 0
		return
	}
	s.gameOver()
}

func (s *Session) gameOver() {
	s.state = GameOver
	s.timer = s.cfg.RestartSeconds
}
