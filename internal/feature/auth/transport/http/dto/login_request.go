package dto

// LoginReq is the request body for POST /api/login.
// メールの形式はここでは検証しません。形式が崩れたメールは単に存在しない
// アカウントとして扱い、資格情報エラー(401)に畳み込みます。
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
