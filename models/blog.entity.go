package models

import "gorm.io/gorm"

// BlogPost mirrors the admin panel's article form: metadata, an author
// block, up to nine question/answer sections and a closing result. Listing
// order is by the user-supplied Date string, newest first, not by creation
// time.
type BlogPost struct {
	gorm.Model
	Title      string `gorm:"type:varchar(255)" json:"title"`
	Category   string `gorm:"type:varchar(100)" json:"category"`
	Excerpt    string `gorm:"type:text" json:"excerpt"`
	CoverImage string `gorm:"type:varchar(512)" json:"coverImage"`
	Date       string `gorm:"type:varchar(50);index" json:"date"`
	ReadTime   string `gorm:"type:varchar(50)" json:"readTime"`

	AuthorName     string `gorm:"type:varchar(150)" json:"authorName"`
	AuthorInitials string `gorm:"type:varchar(10)" json:"authorInitials"`

	Question1 string `gorm:"type:text" json:"question1"`
	Answer1   string `gorm:"type:text" json:"answer1"`
	Question2 string `gorm:"type:text" json:"question2"`
	Answer2   string `gorm:"type:text" json:"answer2"`
	Question3 string `gorm:"type:text" json:"question3"`
	Answer3   string `gorm:"type:text" json:"answer3"`
	Question4 string `gorm:"type:text" json:"question4"`
	Answer4   string `gorm:"type:text" json:"answer4"`
	Question5 string `gorm:"type:text" json:"question5"`
	Answer5   string `gorm:"type:text" json:"answer5"`
	Question6 string `gorm:"type:text" json:"question6"`
	Answer6   string `gorm:"type:text" json:"answer6"`
	Question7 string `gorm:"type:text" json:"question7"`
	Answer7   string `gorm:"type:text" json:"answer7"`
	Question8 string `gorm:"type:text" json:"question8"`
	Answer8   string `gorm:"type:text" json:"answer8"`
	Question9 string `gorm:"type:text" json:"question9"`
	Answer9   string `gorm:"type:text" json:"answer9"`

	Result string `gorm:"type:text" json:"result"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
