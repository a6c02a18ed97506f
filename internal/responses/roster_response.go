package responses

type RosterProcess struct {
	ProcessId   string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
}

type RosterResponse struct {
	Processes []RosterProcess `json:"processes"`
}
