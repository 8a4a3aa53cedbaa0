package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MohauNtholeng/PowerBI-Visual/internal/model"
)

// ObjectsRepository persists the visual's property values in a JSON or YAML file.
type ObjectsRepository struct {
	filePath string
	data     model.Objects
}

// NewObjectsRepository creates a repository and loads filePath if it exists.
func NewObjectsRepository(filePath string) (*ObjectsRepository, error) {
	repo := &ObjectsRepository{filePath: filePath, data: model.Objects{}}
	if filePath == "" {
		return repo, nil
	}
	if err := repo.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return repo, nil
}

// FilePath returns the backing file, empty for an in-memory repository.
func (r *ObjectsRepository) FilePath() string {
	return r.filePath
}

// Load reads the backing file.
func (r *ObjectsRepository) Load() error {
	data, err := os.ReadFile(r.filePath)
	if err != nil {
		return err
	}

	objects := model.Objects{}
	switch ext := strings.ToLower(filepath.Ext(r.filePath)); ext {
	case ".json":
		err = json.Unmarshal(data, &objects)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &objects)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("parse %s: %w", r.filePath, err)
	}
	r.data = objects
	return nil
}

// GetAll returns the persisted objects.
func (r *ObjectsRepository) GetAll() model.Objects {
	return r.data
}

// Set stores one property value and saves the file.
func (r *ObjectsRepository) Set(object, property string, value any) error {
	r.data.Set(object, property, value)
	return r.Save()
}

// Save writes all objects to the backing file. An in-memory repository does nothing.
func (r *ObjectsRepository) Save() error {
	if r.filePath == "" {
		return nil
	}

	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(r.filePath)); ext {
	case ".json":
		data, err = json.MarshalIndent(r.data, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(r.data)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(r.filePath, data, 0644)
}
