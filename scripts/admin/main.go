package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/Luismorlan/yatube/app_setting"
	"github.com/Luismorlan/yatube/cache"
	"github.com/Luismorlan/yatube/model"
	"github.com/Luismorlan/yatube/repository"
	"github.com/Luismorlan/yatube/service"
	"github.com/Luismorlan/yatube/utils"
	"github.com/Luismorlan/yatube/utils/dotenv"
	. "github.com/Luismorlan/yatube/utils/flag"
	. "github.com/Luismorlan/yatube/utils/log"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Admin tasks that have no page: groups are only created here, and users or
// cached pages are removed here.
//
//	go run scripts/admin/main.go -create_group -title Cats -slug cats -description "All about cats"
//	go run scripts/admin/main.go -list_groups
//	go run scripts/admin/main.go -delete_group cats
//	go run scripts/admin/main.go -delete_user leo
//	go run scripts/admin/main.go -clear_page_cache
var (
	createGroup    = flag.Bool("create_group", false, "create a group from -title, -slug and -description")
	title          = flag.String("title", "", "title of the group to create")
	slug           = flag.String("slug", "", "slug of the group to create")
	description    = flag.String("description", "", "description of the group to create")
	listGroups     = flag.Bool("list_groups", false, "print every group")
	deleteGroup    = flag.String("delete_group", "", "slug of the group to delete, its posts stay without group")
	deleteUser     = flag.String("delete_user", "", "username to delete with all their posts, comments and follows")
	clearPageCache = flag.Bool("clear_page_cache", false, "drop every cached page, needs redis")
)

func runCreateGroup(ctx context.Context, repos *repository.Repositories) error {
	if *title == "" || *slug == "" {
		return errors.New("-title and -slug are required")
	}
	group := &model.Group{Title: *title, Slug: *slug, Description: *description}
	if err := repos.Groups.Create(ctx, group); err != nil {
		return err
	}
	Log.WithFields(logrus.Fields{"id": group.ID, "slug": group.Slug}).Info("group created")
	return nil
}

func runListGroups(ctx context.Context, repos *repository.Repositories) error {
	groups, err := repos.Groups.List(ctx)
	if err != nil {
		return err
	}
	for _, g := range groups {
		fmt.Printf("%d\t%s\t%s\n", g.ID, g.Slug, g.Title)
	}
	return nil
}

func runClearPageCache(ctx context.Context) error {
	if !utils.IsRedisConfigured() {
		// An in-process cache lives and dies with the web server.
		return errors.New("redis is not configured, nothing to clear")
	}
	client, err := utils.GetRedisClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()
	if err := cache.NewRedisStore(client).Clear(ctx); err != nil {
		return err
	}
	Log.Info("page cache cleared")
	return nil
}

func main() {
	ServiceName = AdminScript
	Parse()
	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}
	InitLogger()

	setting, err := app_setting.ParseYatubeAppSetting(AppSettingPath)
	if err != nil {
		panic(err)
	}
	db, err := utils.GetDBConnection()
	if err != nil {
		panic(err)
	}
	utils.DatabaseSetupAndMigration(db)

	ctx := context.Background()
	repos := repository.New(db)

	switch {
	case *createGroup:
		err = runCreateGroup(ctx, repos)
	case *listGroups:
		err = runListGroups(ctx, repos)
	case *deleteGroup != "":
		err = repos.Groups.DeleteBySlug(ctx, *deleteGroup)
	case *deleteUser != "":
		err = service.NewUserService(repos, setting.BCRYPT_COST).Delete(ctx, *deleteUser)
	case *clearPageCache:
		err = runClearPageCache(ctx)
	default:
		flag.Usage()
		return
	}
	if err != nil {
		Log.Fatal(err)
	}
}
