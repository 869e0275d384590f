package api

type credentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type askInput struct {
	UserID   uint   `json:"userId"`
	Question string `json:"question"`
}

type startSessionInput struct {
	UserID    uint   `json:"userId"`
	Intensity string `json:"intensity"`
}

type stopSessionInput struct {
	UserID   uint   `json:"userId"`
	Type     string `json:"type"`
	Accuracy *int   `json:"accuracy"`
}
