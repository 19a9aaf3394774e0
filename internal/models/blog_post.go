package models

import "slices"

type BlogPost struct {
	ID          int        `json:"id" mapstructure:"id"`
	Title       string     `json:"title" mapstructure:"title"`
	Content     string     `json:"content" mapstructure:"content"`
	Author      string     `json:"author" mapstructure:"author"`
	Image       string     `json:"image" mapstructure:"image"`
	Tags        []string   `json:"tags" mapstructure:"tags"`
	Status      PostStatus `json:"status" mapstructure:"status"`
	PublishDate string     `json:"publishDate" mapstructure:"publishDate"`
}

func (p BlogPost) GetID() int { return p.ID }

func (p BlogPost) Clone() BlogPost {
	p.Tags = slices.Clone(p.Tags)
	return p
}
