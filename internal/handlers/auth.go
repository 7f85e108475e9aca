package handlers

import (
	"errors"
	"net/http"

	"olyncha_back_end/internal/auth"
	"olyncha_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// AuthActions dispatche POST /api/auth sur le champ action, comme la
// route historique du frontend.
func AuthActions(c *gin.Context) {
	var envelope struct {
		Action   string `json:"action"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindBodyWith(&envelope, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Données invalides"})
		return
	}

	ctx := c.Request.Context()
	sid := sessionID(c)

	switch envelope.Action {
	case "login":
		user, err := AuthStore.Login(ctx, sid, envelope.Email, envelope.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    user,
			"token":   utils.GenerateJWT(user),
			"message": "Login successful",
		})

	case "signup":
		user, err := AuthStore.Signup(ctx, sid, auth.SignupData{
			Email:    envelope.Email,
			Password: envelope.Password,
			Name:     envelope.Name,
			Phone:    envelope.Phone,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    user,
			"token":   utils.GenerateJWT(user),
			"message": "Account created successfully",
		})

	case "updateProfile":
		// re-lecture du corps en champs pointeurs : seuls les champs
		// réellement fournis participent à la fusion superficielle
		var patch auth.ProfileUpdate
		if err := c.ShouldBindBodyWith(&patch, binding.JSON); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Données invalides"})
			return
		}
		user, err := AuthStore.UpdateProfile(ctx, sid, patch)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, auth.ErrNoUser) {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    user,
			"message": "Profile updated successfully",
		})

	case "logout":
		AuthStore.Logout(ctx, sid)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid action"})
	}
}

//
// 🔁 PUT /api/auth/profile — variante protégée par token de l'action
// updateProfile (même fusion superficielle).
//
func UpdateProfile(c *gin.Context) {
	var patch auth.ProfileUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Données invalides"})
		return
	}

	user, err := AuthStore.UpdateProfile(c.Request.Context(), sessionID(c), patch)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, auth.ErrNoUser) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
		"message": "Profile updated successfully",
	})
}

// Me retourne l'utilisateur de la session courante.
func Me(c *gin.Context) {
	user, ok := AuthStore.Current(c.Request.Context(), sessionID(c))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}
