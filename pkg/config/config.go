/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"jinr.ru/greenlab/go-avtp/pkg/avtp/crf"
)

// CRFConfig holds the field values a new CRF header is built with
type CRFConfig struct {
	StreamID          uint64 `yaml:"streamID"`
	Type              uint16 `yaml:"type"`
	BaseFreq          uint64 `yaml:"baseFreq"`
	Pull              uint8  `yaml:"pull"`
	CRFDataLen        uint16 `yaml:"crfDataLen"`
	TimestampInterval uint16 `yaml:"timestampInterval"`
}

type Config struct {
	LogLevel   string `yaml:"logLevel"`
	*CRFConfig `yaml:"crf,omitempty"`
	filepath   string
}

// Path returns the file the config is loaded from and persisted to
func (c *Config) Path() string {
	return c.filepath
}

func (c *Config) Persist(overwrite bool) error {
	if _, err := os.Stat(c.filepath); err == nil && !overwrite {
		return ErrConfigFileExists{Path: c.filepath}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.filepath)
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	return os.WriteFile(c.filepath, data, 0644)
}

// Load reads the config file over the current values.
// A missing file is not an error, the current values are kept.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.filepath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// Header returns the CRF header described by the config.
// SV and TV are left to crf.Init.
func (c *CRFConfig) Header() *crf.Header {
	return &crf.Header{
		StreamID:          c.StreamID,
		SV:                1,
		Type:              crf.Type(c.Type),
		Pull:              crf.Pull(c.Pull),
		BaseFreq:          c.BaseFreq,
		CRFDataLen:        c.CRFDataLen,
		TimestampInterval: c.TimestampInterval,
	}
}

func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ConfigDir, ConfigFile)
}

// NewConfig returns the default config bound to the given file
func NewConfig(path string) *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		CRFConfig: &CRFConfig{
			StreamID:          DefaultCRFStreamID,
			Type:              uint16(crf.TypeAudioSample),
			BaseFreq:          DefaultCRFBaseFreq,
			Pull:              uint8(crf.PullMultBy1),
			CRFDataLen:        DefaultCRFDataLen,
			TimestampInterval: DefaultCRFTimestampInterval,
		},
		filepath: path,
	}
}

func NewDefaultConfig() *Config {
	return NewConfig(DefaultConfigPath())
}
