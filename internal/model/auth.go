package model

// TokenRequest is the body of POST /auth/token.
type TokenRequest struct {
	Code        string `json:"code" binding:"required"`
	RedirectURI string `json:"redirect_uri" binding:"required"`
}

// TokenResponse carries the issued bearer token and its expiry in unix seconds.
type TokenResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"`
}

// DiscordUser is the subset of the Discord profile the login flow reads.
type DiscordUser struct {
	ID         string `json:"id"`
	GlobalName string `json:"global_name"`
	Username   string `json:"username"`
}

// DisplayName prefers the global name and falls back to the legacy username.
func (u DiscordUser) DisplayName() string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

// DiscordGuild is one entry of GET /users/@me/guilds.
type DiscordGuild struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MeResponse describes the caller of GET /auth/me.
type MeResponse struct {
	ID           string  `json:"id"`
	Username     *string `json:"username"`
	IsActionneur bool    `json:"is_actionneur"`
	IsAdmin      bool    `json:"is_admin"`
}
