package model

import "github.com/golang-jwt/jwt/v5"

// StaffClaims are JWT claims for consultancy staff
type StaffClaims struct {
	StaffID string `json:"staffId"`
	jwt.RegisteredClaims
}

// LoginRequest is the staff login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after a successful staff login
type LoginResponse struct {
	Token   string `json:"token"`
	StaffID string `json:"staffId"`
}
