package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pennywise-app/backend/internal/auth"
	"github.com/pennywise-app/backend/internal/httputil"
	"github.com/pennywise-app/backend/internal/models"
)

// sessionCookie is the name of the HTTP-only cookie carrying the session token.
const sessionCookie = "pennywise_session"

// contextUserID is the gin context key the middleware stores the
// resolved user ID under.
const contextUserID = "pennywise:userID"

// RegisterAuthRoutes registers the routes for registration, login and
// session handling with the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", RegisterUser)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", Login)

	r.OPTIONS("/logout", httputil.OptionsPost)
	r.POST("/logout", Logout)

	r.OPTIONS("/me", httputil.OptionsGet)
	r.GET("/me", authenticate, GetMe)
}

// authenticate resolves the session cookie to a user ID and aborts the
// request with 401 when it can't. OPTIONS requests pass through so that
// CORS preflights work without a session.
func authenticate(c *gin.Context) {
	if c.Request.Method == http.MethodOptions {
		c.Next()
		return
	}

	cookie, err := c.Cookie(sessionCookie)
	if err != nil {
		c.AbortWithStatusJSON(status(errNotLoggedIn), httpError{Error: errNotLoggedIn.Error()})
		return
	}

	userID, err := tokens.Validate(cookie)
	if err != nil {
		c.AbortWithStatusJSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Set(contextUserID, userID)
	c.Next()
}

// currentUser returns the user ID the middleware resolved for this request.
func currentUser(c *gin.Context) uuid.UUID {
	return c.MustGet(contextUserID).(uuid.UUID)
}

// startSession issues a session token for the user and sets the cookie.
func startSession(c *gin.Context, userID uuid.UUID) error {
	token, err := tokens.Issue(userID)
	if err != nil {
		return models.ErrGeneral
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, token, int(auth.Lifetime.Seconds()), "/", "", false, true)
	return nil
}

// @Summary		Register user
// @Description	Creates a new user and logs them in
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/auth/register [post]
func RegisterUser(c *gin.Context) {
	var editable UserEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	if strings.TrimSpace(editable.Password) == "" {
		e := errPasswordRequired.Error()
		c.JSON(status(errPasswordRequired), UserResponse{Error: &e})
		return
	}

	hash, err := auth.HashPassword(editable.Password)
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(status(models.ErrGeneral), UserResponse{Error: &e})
		return
	}

	user := editable.model()
	user.Password = hash

	err = models.DB.Create(&user).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	err = startSession(c, user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	data := newUser(user)
	c.JSON(http.StatusCreated, UserResponse{Data: &data})
}

// @Summary		Log in
// @Description	Verifies the credentials and starts a session
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	UserResponse
// @Failure		400			{object}	UserResponse
// @Failure		401			{object}	UserResponse
// @Failure		500			{object}	UserResponse
// @Param			credentials	body		LoginEditable	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var editable LoginEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	// An unknown email and a wrong password are indistinguishable on
	// purpose.
	user, err := models.FindUserByEmail(models.DB, editable.Email)
	if err != nil {
		e := errCredentialsInvalid.Error()
		c.JSON(status(errCredentialsInvalid), UserResponse{Error: &e})
		return
	}

	err = auth.VerifyPassword(user.Password, editable.Password)
	if err != nil {
		e := errCredentialsInvalid.Error()
		c.JSON(status(errCredentialsInvalid), UserResponse{Error: &e})
		return
	}

	err = startSession(c, user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	data := newUser(user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// @Summary		Log out
// @Description	Ends the session by clearing the session cookie
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/logout [post]
func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get logged in user
// @Description	Returns the user the session belongs to
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Router			/v1/auth/me [get]
func GetMe(c *gin.Context) {
	user, err := models.FindUser(models.DB, currentUser(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	data := newUser(user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}
