package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"git.c3pb.de/farhaven/solarsystem/orrery"
	"git.c3pb.de/farhaven/solarsystem/ui"
	"git.c3pb.de/farhaven/solarsystem/ui/text"

	"github.com/spf13/cobra"
)

func init() {
	/* GLFW wants to run on the 'main thread' */
	runtime.LockOSThread()
}

func newRootCommand() *cobra.Command {
	v := newViper()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "solarsystem",
		Short:         "Animated schematic of a solar system",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	cmd.Flags().String("gif", "", "write one animation cycle to this GIF file instead of opening a window")
	if err := v.BindPFlag("gif", cmd.Flags().Lookup("gif")); err != nil {
		panic(err)
	}

	return cmd
}

func loadFont(path string) (*text.Context, error) {
	if path == "" {
		return text.NewContext()
	}
	return text.LoadContext(path)
}

// setup builds everything a renderer needs from cfg, failing on the first
// invalid piece.
func setup(cfg config) (*ui.Scene, *orrery.Animation, error) {
	cat, err := orrery.NewCatalog(cfg.Planets)
	if err != nil {
		return nil, nil, err
	}

	anim, err := orrery.NewAnimation(orrery.FrameSequence(cfg.Frames), cfg.Interval)
	if err != nil {
		return nil, nil, err
	}

	txt, err := loadFont(cfg.Font)
	if err != nil {
		return nil, nil, fmt.Errorf(`can't load font: %w`, err)
	}

	scenery := orrery.NewScenery(cfg.sceneSeed(), cfg.Stars, cfg.Asteroids)
	vp := ui.NewViewport(cfg.Width, cfg.Height, orrery.SceneExtent)

	scene, err := ui.NewScene(cat, scenery, vp, txt)
	if err != nil {
		return nil, nil, err
	}

	log.Printf(`%d planets, %d bodies, %d frames every %s`, cat.Len(), len(cat.Bodies()), anim.Len(), anim.Interval())

	return scene, anim, nil
}

func writeGIF(path string, scene *ui.Scene, anim *orrery.Animation) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := ui.WriteGIF(fh, scene, anim); err != nil {
		fh.Close()
		return err
	}

	log.Printf(`wrote %s`, path)
	return fh.Close()
}

func run(cfg config) error {
	scene, anim, err := setup(cfg)
	if err != nil {
		return err
	}

	if cfg.GIF != "" {
		return writeGIF(cfg.GIF, scene, anim)
	}

	ctx, err := ui.NewDrawContext(scene)
	if err != nil {
		return err
	}
	defer ctx.Shutdown()

	log.Println(`running until the window is closed`)
	return ctx.Run(anim)
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf(`%s`, err)
	}
}
