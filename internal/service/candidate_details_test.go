package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mrraghuvarun/talent/internal/domain/model"
	apperrors "github.com/mrraghuvarun/talent/internal/errors"
	"github.com/mrraghuvarun/talent/internal/mocks"
)

func sampleDetails() model.CandidateDetails {
	return model.CandidateDetails{
		PersonalDetails: model.PersonalDetails{ID: "77", FirstName: "Ada", LastName: "Lovelace", City: "London"},
		Qualifications: []model.Qualification{
			{ID: "q1", RecentJob: "Analyst"},
			{ID: "q2", RecentJob: "Engineer"},
		},
		Skills:         []string{"go"},
		Certifications: nil,
	}
}

func newTestDetails(t *testing.T) (*DetailsService, *mocks.MockDetailsAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockDetailsAPI(ctrl)
	return NewDetailsService(DetailsServiceOptions{API: api}), api
}

func TestNewDetailsService_RequiredDependency(t *testing.T) {
	assert.Panics(t, func() { NewDetailsService(DetailsServiceOptions{}) })
}

func TestDetailsService_Get(t *testing.T) {
	svc, api := newTestDetails(t)
	ctx := context.Background()

	api.EXPECT().GetDetails(ctx, model.CandidateID("1")).Return(sampleDetails(), nil)
	got, err := svc.Get(ctx, "1")
	require.NoError(t, err)
	assert.NotNil(t, got.Certifications, "nil slices are normalised")
	assert.Equal(t, "Ada", got.PersonalDetails.FirstName)

	api.EXPECT().GetDetails(ctx, model.CandidateID("2")).Return(model.CandidateDetails{}, apperrors.NotFoundf("candidate 2 not found"))
	_, err = svc.Get(ctx, "2")
	assert.True(t, apperrors.IsNotFound(err))

	api.EXPECT().GetDetails(ctx, model.CandidateID("3")).Return(model.CandidateDetails{}, errors.New("timeout"))
	_, err = svc.Get(ctx, "3")
	assert.True(t, apperrors.IsFetchFailure(err))
	assert.Equal(t, "get_details", apperrors.GetStep(err))

	_, err = svc.Get(ctx, "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestDetailsService_ResumeURL(t *testing.T) {
	svc, api := newTestDetails(t)

	api.EXPECT().ResumeURL(model.CandidateID("77")).Return("http://api/resume/77")

	assert.Equal(t, "http://api/resume/77", svc.ResumeURL(sampleDetails()))
	assert.Empty(t, svc.ResumeURL(model.CandidateDetails{}))
}

func TestDetailsService_DownloadResume(t *testing.T) {
	svc, api := newTestDetails(t)
	ctx := context.Background()
	var buf bytes.Buffer

	api.EXPECT().DownloadResume(ctx, model.CandidateID("77"), &buf).Return(int64(3), nil)
	n, err := svc.DownloadResume(ctx, sampleDetails(), &buf)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	api.EXPECT().DownloadResume(ctx, model.CandidateID("77"), &buf).Return(int64(0), apperrors.NotFoundf("no resume"))
	_, err = svc.DownloadResume(ctx, sampleDetails(), &buf)
	assert.True(t, apperrors.IsNotFound(err))

	api.EXPECT().DownloadResume(ctx, model.CandidateID("77"), &buf).Return(int64(0), errors.New("reset"))
	_, err = svc.DownloadResume(ctx, sampleDetails(), &buf)
	assert.True(t, apperrors.IsFetchFailure(err))
	assert.Equal(t, "download_resume", apperrors.GetStep(err))

	_, err = svc.DownloadResume(ctx, model.CandidateDetails{}, &buf)
	assert.True(t, apperrors.IsNotFound(err), "no personal details record")
}

func TestDetailsEditor_FormIsolatedUntilSubmit(t *testing.T) {
	svc, api := newTestDetails(t)
	ctx := context.Background()
	api.EXPECT().GetDetails(ctx, model.CandidateID("1")).Return(sampleDetails(), nil)

	ed, err := svc.Open(ctx, "1")
	require.NoError(t, err)

	assert.False(t, ed.Editing(SectionPersonal))
	assert.True(t, ed.Toggle(SectionPersonal))
	require.NoError(t, ed.SetPersonal("city", "Paris"))
	assert.Error(t, ed.SetPersonal("shoe_size", "9"))
	require.NoError(t, ed.SetQualification(1, "recent_job", "Lead"))
	assert.True(t, apperrors.IsValidation(ed.SetQualification(5, "recent_job", "x")))
	ed.SetSkills([]string{" go ", "", "sql"})

	assert.Equal(t, "London", ed.Details().PersonalDetails.City)
	form := ed.Form()
	assert.Equal(t, "Paris", form.PersonalDetails.City)
	assert.Equal(t, "Lead", form.Qualifications[1].RecentJob)
	assert.Equal(t, "Engineer", ed.Details().Qualifications[1].RecentJob)
	assert.Equal(t, []string{"go", "sql"}, form.Skills)
}

func TestDetailsEditor_SubmitPersonalWithResume(t *testing.T) {
	svc, api := newTestDetails(t)
	ctx := context.Background()

	updated := sampleDetails()
	updated.PersonalDetails.City = "Paris"
	updated.PersonalDetails.ResumePath = "uploads/77.pdf"

	resume := model.ResumeUpload{FileName: "cv.pdf", Content: []byte("%PDF")}
	gomock.InOrder(
		api.EXPECT().GetDetails(ctx, model.CandidateID("1")).Return(sampleDetails(), nil),
		api.EXPECT().UpdatePersonal(ctx, model.CandidateID("1"), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ model.CandidateID, u model.PersonalUpdate) error {
				assert.Equal(t, "Paris", u.Details.City)
				require.NotNil(t, u.Resume)
				assert.Equal(t, "cv.pdf", u.Resume.FileName)
				return nil
			}),
		api.EXPECT().GetDetails(ctx, model.CandidateID("1")).Return(updated, nil),
	)

	ed, err := svc.Open(ctx, "1")
	require.NoError(t, err)
	ed.Toggle(SectionPersonal)
	require.NoError(t, ed.SetPersonal("city", "Paris"))
	ed.AttachResume(resume)

	require.NoError(t, ed.Submit(ctx, SectionPersonal))
	assert.False(t, ed.Editing(SectionPersonal), "section closes after submit")
	assert.Equal(t, "uploads/77.pdf", ed.Details().PersonalDetails.ResumePath)
	assert.Equal(t, ed.Details().PersonalDetails, ed.Form().PersonalDetails)
}

func TestDetailsEditor_SubmitPersonalInvalidURL(t *testing.T) {
	svc, api := newTestDetails(t)
	ctx := context.Background()
	api.EXPECT().GetDetails(ctx, model.CandidateID("1")).Return(sampleDetails(), nil)

	ed, err := svc.Open(ctx, "1")
	require.NoError(t, err)
	require.NoError(t, ed.SetPersonal("linkedin_url", "not a url"))

	err = ed.Submit(ctx, SectionPersonal)

	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "linkedin_url", apperrors.GetField(err))
}

func TestDetailsEditor_SubmitQualificationsStopsOnFailure(t *testing.T) {
	svc, api := newTestDetails(t)
	ctx := context.Background()

	gomock.InOrder(
		api.EXPECT().GetDetails(ctx, model.CandidateID("1")).Return(sampleDetails(), nil),
		api.EXPECT().UpdateQualification(ctx, model.CandidateID("1"), gomock.Any()).Return(nil),
		api.EXPECT().UpdateQualification(ctx, model.CandidateID("1"), gomock.Any()).Return(errors.New("409")),
	)

	ed, err := svc.Open(ctx, "1")
	require.NoError(t, err)
	ed.Toggle(SectionQualifications)
	require.NoError(t, ed.SetQualification(1, "compensation", "100k"))

	err = ed.Submit(ctx, SectionQualifications)

	require.Error(t, err)
	assert.True(t, apperrors.IsMutationFailure(err))
	assert.Equal(t, "update_qualification[1]", apperrors.GetStep(err))
	assert.True(t, ed.Editing(SectionQualifications), "failed submit keeps the form open")
	assert.Equal(t, "100k", ed.Form().Qualifications[1].Compensation, "pending edits survive")
}

func TestDetailsEditor_SubmitSkillsAndCertifications(t *testing.T) {
	svc, api := newTestDetails(t)
	ctx := context.Background()

	gomock.InOrder(
		api.EXPECT().GetDetails(ctx, model.CandidateID("1")).Return(sampleDetails(), nil),
		api.EXPECT().UpdateSkills(ctx, model.CandidateID("1"), []string{"go", "k8s"}).Return(nil),
		api.EXPECT().GetDetails(ctx, model.CandidateID("1")).Return(sampleDetails(), nil),
		api.EXPECT().UpdateCertifications(ctx, model.CandidateID("1"), []string{"CKA"}).Return(errors.New("500")),
	)

	ed, err := svc.Open(ctx, "1")
	require.NoError(t, err)

	ed.SetSkills([]string{"go", "k8s"})
	require.NoError(t, ed.Submit(ctx, SectionSkills))

	ed.SetCertifications([]string{"CKA"})
	err = ed.Submit(ctx, SectionCertifications)
	assert.True(t, apperrors.IsMutationFailure(err))
	assert.Equal(t, "update_certifications", apperrors.GetStep(err))
}

func TestDetailsEditor_SubmitUnknownSection(t *testing.T) {
	svc, api := newTestDetails(t)
	ctx := context.Background()
	api.EXPECT().GetDetails(ctx, model.CandidateID("1")).Return(sampleDetails(), nil)

	ed, err := svc.Open(ctx, "1")
	require.NoError(t, err)

	assert.True(t, apperrors.IsValidation(ed.Submit(ctx, Section("avatar"))))
}

func TestParseSection(t *testing.T) {
	s, err := ParseSection(" Skills ")
	require.NoError(t, err)
	assert.Equal(t, SectionSkills, s)

	_, err = ParseSection("avatar")
	assert.True(t, apperrors.IsValidation(err))
}
