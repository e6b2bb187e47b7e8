package services

import (
	"errors"
	"strings"
	"time"

	"blogyetu/app/models"
	"blogyetu/app/repositories"
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo   repositories.PostRepository
	userRepo   repositories.UserRepository
	categories *CategoryService
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository, categories *CategoryService) *PostService {
	return &PostService{
		postRepo:   postRepo,
		userRepo:   userRepo,
		categories: categories,
	}
}

// CreatePost validates the input and referenced categories, computes the
// slug from the title, and persists the post with the acting user as its
// immutable author.
func (s *PostService) CreatePost(input CreatePostInput, authorID string) (*models.Post, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	if err := s.categories.ValidateCategories(input.Categories); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:         strings.TrimSpace(input.Title),
		Content:       input.Content,
		Excerpt:       input.Excerpt,
		FeaturedImage: input.FeaturedImage,
		CategoryIDs:   dedupe(input.Categories),
		AuthorID:      authorID,
	}
	post.Slug = models.Slugify(post.Title)
	post.BeforeCreate()
	if err := post.Validate(); err != nil {
		return nil, err
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post with categories, author, and comment authors
// resolved to display fields.
func (s *PostService) GetPost(id string) (*models.PostView, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.resolvePost(post, newUserResolver(s.userRepo))
}

// ListPosts returns one page of posts, newest first. Non-positive page
// and limit fall back to 1 and 10.
func (s *PostService) ListPosts(page, limit int) (*models.PostPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit
	posts, total, err := s.postRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}

	resolver := newUserResolver(s.userRepo)
	items := []*models.PostView{}
	for _, post := range posts {
		view, err := s.resolvePost(post, resolver)
		if err != nil {
			return nil, err
		}
		items = append(items, view)
	}

	return &models.PostPage{
		Items:      items,
		Page:       page,
		TotalPages: (total + limit - 1) / limit,
		TotalCount: total,
	}, nil
}

// UpdatePost applies a partial update: fields absent from the input keep
// their stored values. The slug is recomputed only when the title
// actually changed. The actor must be the post's author or an admin.
func (s *PostService) UpdatePost(id string, input UpdatePostInput, actor *models.User) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !CanMutate(actor, post) {
		return nil, ErrNotAuthorized
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	if input.Categories != nil {
		if err := s.categories.ValidateCategories(input.Categories); err != nil {
			return nil, err
		}
		post.CategoryIDs = dedupe(input.Categories)
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title != post.Title {
			post.Title = title
			post.Slug = models.Slugify(title)
		}
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.FeaturedImage != nil {
		post.FeaturedImage = *input.FeaturedImage
	}
	post.UpdatedAt = time.Now()

	if err := post.Validate(); err != nil {
		return nil, err
	}
	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post permanently. The actor must be the post's
// author or an admin.
func (s *PostService) DeletePost(id string, actor *models.User) error {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}
	if !CanMutate(actor, post) {
		return ErrNotAuthorized
	}
	return s.postRepo.Delete(id)
}

// AddComment appends a comment by the acting user to a post. The text is
// stripped of any markup before storage. Only the new comment's author
// is resolved for the response; the rest of the post is untouched.
func (s *PostService) AddComment(postID string, actor *models.User, input AddCommentInput) (*models.CommentView, error) {
	input.Text = strings.TrimSpace(strictPolicy.Sanitize(input.Text))
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	comment := models.Comment{
		UserID: actor.ID,
		Text:   input.Text,
	}
	comment.BeforeCreate()

	if err := s.postRepo.AppendComment(postID, comment); err != nil {
		return nil, err
	}

	return &models.CommentView{
		ID:        comment.ID,
		User:      actor.Ref(),
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}, nil
}

// userResolver caches user lookups while resolving a post or a page of
// posts, so each referenced user is fetched once.
type userResolver struct {
	userRepo repositories.UserRepository
	cache    map[string]models.UserRef
}

func newUserResolver(userRepo repositories.UserRepository) *userResolver {
	return &userResolver{
		userRepo: userRepo,
		cache:    make(map[string]models.UserRef),
	}
}

// ref resolves a user id to display fields. A dangling reference keeps
// the id and empty display fields instead of failing the read.
func (r *userResolver) ref(id string) (models.UserRef, error) {
	if ref, ok := r.cache[id]; ok {
		return ref, nil
	}

	user, err := r.userRepo.GetByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		ref := models.UserRef{ID: id}
		r.cache[id] = ref
		return ref, nil
	}
	if err != nil {
		return models.UserRef{}, err
	}

	ref := user.Ref()
	r.cache[id] = ref
	return ref, nil
}

func (s *PostService) resolvePost(post *models.Post, resolver *userResolver) (*models.PostView, error) {
	categories, err := s.categories.Refs(post.CategoryIDs)
	if err != nil {
		return nil, err
	}
	author, err := resolver.ref(post.AuthorID)
	if err != nil {
		return nil, err
	}

	comments := []models.CommentView{}
	for _, comment := range post.Comments {
		user, err := resolver.ref(comment.UserID)
		if err != nil {
			return nil, err
		}
		comments = append(comments, models.CommentView{
			ID:        comment.ID,
			User:      user,
			Text:      comment.Text,
			CreatedAt: comment.CreatedAt,
		})
	}

	return &models.PostView{
		ID:            post.ID,
		Title:         post.Title,
		Content:       post.Content,
		ContentHTML:   renderContentHTML(post.Content),
		Excerpt:       post.Excerpt,
		FeaturedImage: post.FeaturedImage,
		Categories:    categories,
		Author:        author,
		Slug:          post.Slug,
		Comments:      comments,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}, nil
}
