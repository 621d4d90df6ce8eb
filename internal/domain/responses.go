package domain

type MessageResponse struct {
	Message string `json:"message"`
}

type ItemResponse struct {
	ItemID  int    `json:"item_id"`
	Message string `json:"message"`
	Cached  bool   `json:"cached"`
}

type HeavyResponse struct {
	Message     string `json:"message"`
	ResultDummy int    `json:"result_dummy"`
}
