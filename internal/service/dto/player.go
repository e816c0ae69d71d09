package dto

// 一名玩家在主持人视角下的状态
type PlayerStatus struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
	// 可空，仅伪装者声明后有值
	FakeRole string `json:"fake_role,omitempty"`

	Alive   bool `json:"alive"`
	Present bool `json:"present"`
	Kicked  bool `json:"kicked"`
	Lynched bool `json:"lynched"`

	// 可空，投票目标的名字
	LynchVote string `json:"lynch_vote,omitempty"`
	// 本夜尚未处理的强制能力
	Pending []string `json:"pending,omitempty"`

	Won bool `json:"won"`
}
