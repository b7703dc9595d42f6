package request

type SetProviderTokenRequest struct {
	Token string `json:"token"`
}
