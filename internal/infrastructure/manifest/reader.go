// Package manifest загружает авторский файл видов и ресурсов,
// расширяющий встроенный каталог при старте сервера. Файл проходит
// тот же нормализатор атак, что и встроенные таблицы: загрузка
// обрывается на первой ошибке целостности, полупустой каталог в
// симуляцию не попадает.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"rivermarsh-server/pkg/bestiary"
	"rivermarsh-server/pkg/logger"
)

// Document - корень файла манифеста.
type Document struct {
	// Version зарезервирована под миграции формата. Сейчас принимается
	// только 1.
	Version int `json:"version"`

	Species   map[string]bestiary.SpeciesTemplate  `json:"species,omitempty"`
	Resources map[string]bestiary.ResourceTemplate `json:"resources,omitempty"`
}

// Load читает манифест и вливает его в каталог. Неизвестные поля в
// файле - ошибка: опечатка в имени поля не должна молча обнулять стат.
func Load(path string, catalog *bestiary.Catalog) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return fmt.Errorf("manifest %s: %w", path, err)
	}

	for id, tpl := range doc.Species {
		if err := catalog.AddSpecies(id, tpl); err != nil {
			return fmt.Errorf("manifest %s: %w", path, err)
		}
	}
	for id, tpl := range doc.Resources {
		if err := catalog.AddResource(id, tpl); err != nil {
			return fmt.Errorf("manifest %s: %w", path, err)
		}
	}

	logger.System("manifest").WithFields(logrus.Fields{
		"path":      path,
		"species":   len(doc.Species),
		"resources": len(doc.Resources),
	}).Info("Manifest loaded")
	return nil
}

// Parse разбирает и валидирует сырой манифест.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if doc.Version != 1 {
		return nil, fmt.Errorf("unsupported manifest version %d", doc.Version)
	}
	return &doc, nil
}
