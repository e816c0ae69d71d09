package dto

type TableStatus struct {
	GameID  string `json:"game_id"`
	Edition int    `json:"edition"`

	Date  uint   `json:"date"`
	Time  string `json:"time"`
	Ended bool   `json:"ended"`

	LynchCanOccur   bool `json:"lynch_can_occur"`
	MafiaCanUseKill bool `json:"mafia_can_use_kill"`

	Players []PlayerStatus `json:"players"`
}

type InvestigationView struct {
	Caster     string `json:"caster"`
	Target     string `json:"target"`
	Date       uint   `json:"date"`
	Suspicious bool   `json:"suspicious"`
}
