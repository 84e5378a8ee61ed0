package exposure

import (
	"fmt"
	"image"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/tiff"

	"github.com/dany-demise/calibrate-debevec/pkg/debevec"
)

func (s *Stack)LoadFilesAndDirs(args ...string) (error) {
	for _, arg := range args {
		item, err := os.Stat(arg)

		switch {

		case err != nil:
			return fmt.Errorf("load %s: %v", arg, err)

		case item.IsDir():
			// Is a dir, recurse into contents
			contents, err := ioutil.ReadDir(arg)
			if err != nil {
				return fmt.Errorf("readdir %s: %v", arg, err)
			}
			for _, content := range contents {
				if err := s.LoadFilesAndDirs(filepath.Join(arg, content.Name())); err != nil {
					return fmt.Errorf("load %s: %v", arg, err)
				}
			}

		default: // is a file, load it
			if err := s.loadFile(arg); err != nil {
				return fmt.Errorf("loadfile %s: %w", arg, err)
			}
		}
	}

	return nil
}

func (s *Stack)loadFile(filename string) error {
	ext := filepath.Ext(filename)

	switch strings.ToLower(ext) {

	case ".tif", ".tiff", ".jpg", ".jpeg", ".png":
		layer, err := loadImage(filename)
		if err != nil {
			return fmt.Errorf("Loading %s as image failed: %v", filename, err)
		}
		if s.Config.Verbosity > 0 {
			log.Printf("Loaded %s\n", layer)
		}
		s.AddLayer(layer)

	case ".yaml":
		cfg, err := loadConfig(filename)
		if err != nil {
			return fmt.Errorf("Loading %s as config YAML failed: %w", filename, err)
		}
		s.Config = cfg
		log.Printf("Loaded base configuration from %s\n", filename)
	}

	return nil
}

func loadConfig(filename string) (debevec.Config, error) {
	contents, err := ioutil.ReadFile(filename)
	if err != nil {
		return debevec.Config{}, fmt.Errorf("config read %s: %v", filename, err)
	}

	return debevec.NewConfigFromYaml(contents)
}

func loadImage(filename string) (Layer, error) {
	l := Layer{LoadFilename: filename}

	// EXIF is optional; without it, the exposure times have to come from
	// somewhere else (see Stack.SetTimes).
	if ev, err := loadExposureValue(filename); err == nil {
		l.ExposureValue = ev
	}

	img, err := decodeImage(filename)
	if err != nil {
		return l, err
	}
	l.Image = img

	return l, nil
}

func decodeImage(filename string) (image.Image, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tif", ".tiff":
		reader, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("open+r img '%s': %v", filename, err)
		}
		defer reader.Close()
		img, err := tiff.Decode(reader)
		if err != nil {
			return nil, fmt.Errorf("tiff loading '%s': %v", filename, err)
		}
		return img, nil

	default:
		img, err := imaging.Open(filename, imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("image loading '%s': %v", filename, err)
		}
		return img, nil
	}
}

func loadExposureValue(filename string) (ExposureValue, error) {
	ev := ExposureValue{}

	reader, err := os.Open(filename)
	if err != nil {
		return ev, fmt.Errorf("open+r exif '%s': %v", filename, err)
	}
	defer reader.Close()

	ex, err := exif.Decode(reader)
	if err != nil {
		return ev, fmt.Errorf("exif parsing '%s': %v", filename, err)
	}

	if tag,err := ex.Get(exif.ExposureTime); err != nil {
		return ev, fmt.Errorf("exif ExposureTime '%s': %v", filename, err)
	} else if num,denom,err := tag.Rat2(0); err != nil {
		return ev, fmt.Errorf("exif ExposureTime '%s': %v", filename, err)
	} else {
		ev.ShutterSpeed = rat64{num,denom}
	}

	// Aperture and ISO are nice-to-haves, used to sanity check the stack
	if tag,err := ex.Get(exif.ISOSpeedRatings); err == nil {
		if val,err := tag.Int64(0); err == nil {
			ev.ISO = val
		}
	}

	if tag,err := ex.Get(exif.FNumber); err == nil {
		if num,denom,err := tag.Rat2(0); err == nil && denom > 0 {
			ev.ApertureX10 = num * 10 / denom
		}
	}

	return ev, ev.Validate()
}
