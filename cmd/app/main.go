package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/floe/go-backscrub/internal/config"
	"github.com/floe/go-backscrub/internal/core"
	"github.com/floe/go-backscrub/internal/fourcc"
	"github.com/floe/go-backscrub/internal/logger"
)

var app = cli.NewApp()
var log = logger.Log

func init() {
	app.Name = "backscrub"
	app.Usage = "Video background replacement tools"
	app.UsageText = "backscrub [command] args"
	app.HideHelp = true
	app.HideVersion = true
	app.Commands = []cli.Command{
		{
			Name:      "composite",
			Aliases:   []string{"c"},
			Usage:     "Blend a frame directory with a background under masks",
			ArgsUsage: "framesdir masksdir background",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out",
					Usage: "output directory",
					Value: config.PathCompositeOut,
				},
			},
			Action: func(c *cli.Context) error {
				framesDir, err := getArg(c, 0, "frames directory")
				if err != nil {
					return err
				}
				masksDir, err := getArg(c, 1, "masks directory")
				if err != nil {
					return err
				}
				background, err := getArg(c, 2, "background")
				if err != nil {
					return err
				}
				return core.Composite(context.Background(), framesDir, masksDir, background, c.String("out"))
			},
		},
		{
			Name:      "yuyv",
			Aliases:   []string{"y"},
			Usage:     "Convert an RGB image to a raw packed YUYV dump",
			ArgsUsage: "image",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out",
					Usage: "output file",
					Value: config.PathYUYVOut,
				},
			},
			Action: func(c *cli.Context) error {
				input, err := getArg(c, 0, "input image")
				if err != nil {
					return err
				}
				return core.ConvertYUYV(input, c.String("out"))
			},
		},
		{
			Name:      "fourcc",
			Aliases:   []string{"f"},
			Usage:     "Print the packed tag for a codec string",
			ArgsUsage: "code",
			Action: func(c *cli.Context) error {
				code, err := getArg(c, 0, "codec string")
				if err != nil {
					return err
				}
				tag := fourcc.Resolve(code)
				if tag == 0 {
					return fmt.Errorf("No codec for %q", code)
				}
				fmt.Printf("0x%08X (%d)\n", tag, tag)
				return nil
			},
		},
		{
			Name:      "resolve",
			Aliases:   []string{"r"},
			Usage:     "Locate an asset in the search path",
			ArgsUsage: "category name",
			Action: func(c *cli.Context) error {
				category, err := getArg(c, 0, "category")
				if err != nil {
					return err
				}
				name, err := getArg(c, 1, "asset name")
				if err != nil {
					return err
				}
				path, ok := core.ResolveAsset(name, category)
				if !ok {
					return fmt.Errorf("Asset %q not found in category %q", name, category)
				}
				fmt.Println(path)
				return nil
			},
		},
	}
}

func getArg(c *cli.Context, i int, name string) (string, error) {
	v := c.Args().Get(i)
	if v == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	return v, nil
}

func main() {
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
