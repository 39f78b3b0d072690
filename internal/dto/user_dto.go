package dto

// RegisterUser 注册载荷
type RegisterUser struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Image    string `json:"image"`
	Bio      string `json:"bio"`
	Demo     bool   `json:"demo"`
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	User RegisterUser `json:"user" binding:"required"`
}

// LoginUser 登录载荷
type LoginUser struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	User LoginUser `json:"user" binding:"required"`
}

// UpdateUser 更新用户载荷，空字符串视为"不修改"
type UpdateUser struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Image    string `json:"image"`
	Bio      string `json:"bio"`
}

// UpdateUserRequest 更新用户请求
type UpdateUserRequest struct {
	User UpdateUser `json:"user" binding:"required"`
}

// UserResponse 用户响应（登录响应不含id）
type UserResponse struct {
	ID       uint   `json:"id,omitempty"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Token    string `json:"token"`
}

// UserEnvelope {"user": {...}}
type UserEnvelope struct {
	User UserResponse `json:"user"`
}
