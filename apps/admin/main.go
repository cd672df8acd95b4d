package main

import (
	"context"
	"log"
	"os"

	"github.com/nabha-edu/shiksha/core"
	"github.com/nabha-edu/shiksha/storage/mongodb"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.LoadConfig()
	errAndDie(err)

	// set up DB
	db, err := mongodb.Open(conf)
	errAndDie(err)
	defer mongodb.Close(db)
	errAndDie(mongodb.EnsureIndexes(context.Background(), db))

	// start CLI
	cli := commandLine{
		usrRepo: mongodb.NewUserRepository(db),
		lesRepo: mongodb.NewLessonRepository(db),
		modRepo: mongodb.NewModuleRepository(db),
		dropSeedData: func(ctx context.Context) error {
			return mongodb.DropSeedData(ctx, db)
		},
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
