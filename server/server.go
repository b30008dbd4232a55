package server

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/Luismorlan/yatube/activity"
	"github.com/Luismorlan/yatube/app_setting"
	"github.com/Luismorlan/yatube/cache"
	"github.com/Luismorlan/yatube/feed"
	"github.com/Luismorlan/yatube/file_store"
	"github.com/Luismorlan/yatube/repository"
	"github.com/Luismorlan/yatube/server/middlewares"
	"github.com/Luismorlan/yatube/service"
	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

//go:embed templates
var templatesFS embed.FS

// Deps is everything the web server is built from.
type Deps struct {
	DB        *gorm.DB
	Setting   app_setting.YatubeAppSetting
	Images    file_store.ImageStore
	PageCache cache.Store
	Sessions  *scs.SessionManager
	Publisher activity.Publisher
	// Middlewares run before every route, e.g. logging and tracing.
	Middlewares []gin.HandlerFunc
}

type Server struct {
	setting   app_setting.YatubeAppSetting
	feed      *feed.Query
	repos     *repository.Repositories
	posts     *service.PostService
	comments  *service.CommentService
	follows   *service.FollowService
	users     *service.UserService
	images    file_store.ImageStore
	pageCache cache.Store
	sessions  *scs.SessionManager
	publisher activity.Publisher
	router    *gin.Engine
}

func New(deps Deps) (*Server, error) {
	if deps.Publisher == nil {
		deps.Publisher = activity.NopPublisher{}
	}
	if deps.Sessions == nil {
		deps.Sessions = NewSessionManager(nil, deps.Setting.SessionLifetime(), false)
	}
	if deps.PageCache == nil {
		store, err := cache.NewLRUStore(deps.Setting.PAGE_CACHE_LRU_SIZE)
		if err != nil {
			return nil, err
		}
		deps.PageCache = store
	}
	repos := repository.New(deps.DB)
	follows := service.NewFollowService(repos, deps.Publisher)
	s := &Server{
		setting:   deps.Setting,
		feed:      feed.NewQuery(repos, follows, deps.Setting.PER_PAGE_COUNT),
		repos:     repos,
		posts:     service.NewPostService(repos, deps.Images, deps.Publisher),
		comments:  service.NewCommentService(repos, deps.Publisher),
		follows:   follows,
		users:     service.NewUserService(repos, deps.Setting.BCRYPT_COST),
		images:    deps.Images,
		pageCache: deps.PageCache,
		sessions:  deps.Sessions,
		publisher: deps.Publisher,
	}

	tmpl, err := s.parseTemplates()
	if err != nil {
		return nil, err
	}
	s.router = s.buildRouter(tmpl, deps.Middlewares)
	return s, nil
}

// Handler is the root http handler, sessions are loaded and saved around the
// router.
func (s *Server) Handler() http.Handler {
	return s.sessions.LoadAndSave(s.router)
}

func (s *Server) parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"imageUrl": s.images.GetUrlFromKey,
		"date": func(t time.Time) string {
			return t.Format("2 Jan 2006")
		},
		"selected": func(formGroup string, id uint) bool {
			return formGroup == strconv.FormatUint(uint64(id), 10)
		},
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html", "templates/*/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse templates")
	}
	return tmpl, nil
}

func (s *Server) buildRouter(tmpl *template.Template, extra []gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(gin.Recovery())
	router.Use(extra...)
	router.Use(middlewares.LoadActor(s.sessions, s.users.Get))

	if local, ok := s.images.(*file_store.LocalFileStore); ok {
		router.Static(file_store.MediaUrlPrefix, local.Root())
	}

	auth := middlewares.RequireLogin()
	anonymousOnly := func(c *gin.Context) bool {
		return middlewares.ActorFrom(c.Request.Context()) != nil
	}
	pageCache := cache.CachePage(s.pageCache, s.setting.IndexCacheTTL(), anonymousOnly, s.publisher)

	router.GET("/", pageCache, s.index)
	router.GET("/group/:slug/", s.groupPosts)
	router.GET("/profile/:username/", s.profile)
	router.GET("/profile/:username/follow/", auth, s.profileFollow)
	router.GET("/profile/:username/unfollow/", auth, s.profileUnfollow)
	router.GET("/posts/:post_id/", s.postDetail)
	router.GET("/posts/:post_id/edit/", auth, s.postEditForm)
	router.POST("/posts/:post_id/edit/", auth, s.postEdit)
	router.GET("/posts/:post_id/delete/", auth, s.postDelete)
	router.POST("/posts/:post_id/delete/", auth, s.postDelete)
	router.POST("/posts/:post_id/comment/", auth, s.addComment)
	router.GET("/create/", auth, s.postCreateForm)
	router.POST("/create/", auth, s.postCreate)
	router.GET("/follow/", auth, s.followIndex)

	router.GET("/auth/signup/", s.signUpForm)
	router.POST("/auth/signup/", s.signUp)
	router.GET("/auth/login/", s.loginForm)
	router.POST("/auth/login/", s.login)
	router.GET("/auth/logout/", s.logout)
	router.POST("/auth/logout/", s.logout)

	router.NoRoute(s.notFound)
	return router
}
